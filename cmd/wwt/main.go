package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/stefanclaw/wwt/internal/config"
	"github.com/stefanclaw/wwt/internal/store"
	"github.com/stefanclaw/wwt/internal/tui"
	"github.com/stefanclaw/wwt/internal/update"
)

var version = "dev"

func main() {
	storePath, args := parseStoreFlag(os.Args)
	os.Args = args

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("wwt %s\n", version)
			return
		case "--help", "-h":
			printHelp()
			return
		case "--update":
			runUpdate()
			return
		case "--uninstall":
			runUninstall()
			return
		}
	}

	if err := run(storePath, os.Args[1:]); err != nil {
		if errors.Is(err, errNoMatches) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// parseStoreFlag strips "--store <path>" from args (the program name stays at
// index 0) and returns the path and the remaining arguments.
func parseStoreFlag(args []string) (string, []string) {
	var storePath string
	rest := []string{args[0]}
	for i := 1; i < len(args); i++ {
		if args[i] == "--store" && i+1 < len(args) {
			storePath = args[i+1]
			i++ // skip the value
		} else {
			rest = append(rest, args[i])
		}
	}
	return storePath, rest
}

func run(storePath string, args []string) error {
	// First run: write the default config so its knobs are discoverable.
	if config.IsFirstRun() {
		_ = config.Save(config.Defaults())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Store path priority: flag > env > config > default
	if storePath == "" {
		storePath = config.StorePath(cfg)
	}

	st, err := store.Open(storePath)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runPicker(st, cfg)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "remember", "set":
		if len(rest) != 2 {
			return fmt.Errorf("usage: wwt remember <name> <description>")
		}
		return st.Set(rest[0], rest[1])

	case "find", "get":
		if len(rest) > 1 {
			return fmt.Errorf("usage: wwt find [query]")
		}
		var query string
		if len(rest) == 1 {
			query = rest[0]
		}
		return runFind(st, query, os.Stdout)

	case "forget", "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: wwt forget <name>")
		}
		return st.Delete(rest[0])

	case "list":
		if len(rest) != 0 {
			return fmt.Errorf("usage: wwt list")
		}
		return runList(st, cfg)

	default:
		return fmt.Errorf("unknown command %q (run wwt --help for usage)", cmd)
	}
}

// errNoMatches renders bare on stderr, without the Error: prefix.
var errNoMatches = errors.New("No matches found.")

func runFind(st *store.Store, query string, out io.Writer) error {
	matches := st.Find(query)
	if len(matches) == 0 {
		return errNoMatches
	}
	for _, e := range matches {
		fmt.Fprintf(out, "%s -> %s\n", e.Name, e.Description)
	}
	return nil
}

func runPicker(st *store.Store, cfg config.Config) error {
	if st.Len() == 0 {
		fmt.Println("Store is empty. Add an entry with: wwt remember <name> <description>")
		return nil
	}

	m := tui.New(tui.Options{
		Store:       st,
		Version:     version,
		CheckUpdate: cfg.Update.Check,
	})
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if picked, ok := final.(tui.Model); ok && picked.Choice() != "" {
		fmt.Println(picked.Choice())
	}
	return nil
}

func runList(st *store.Store, cfg config.Config) error {
	if st.Len() == 0 {
		fmt.Println("Store is empty. Add an entry with: wwt remember <name> <description>")
		return nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(76)}
	if theme := cfg.Output.Theme; theme == "" || theme == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(theme))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}
	out, err := renderer.Render(listDoc(st))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// listDoc builds the markdown document that `wwt list` renders.
func listDoc(st *store.Store) string {
	var doc strings.Builder
	fmt.Fprintf(&doc, "# wwt store\n\nStored at %s\n\n", st.Path())
	for _, e := range st.Entries() {
		fmt.Fprintf(&doc, "- `%s` - %s\n", e.Name, e.Description)
	}
	return doc.String()
}

func runUpdate() {
	if version == "dev" {
		fmt.Println("Auto-update is not available for development builds.")
		return
	}
	fmt.Println("Checking for updates...")
	res, err := update.Apply(context.Background(), version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}
	if res.Applied {
		fmt.Printf("Updated to v%s.\n", res.LatestVersion)
	} else {
		fmt.Println("Already running the latest version.")
	}
}

func runUninstall() {
	configDir := config.Dir()
	fmt.Println("wwt Uninstall")
	fmt.Println("=============")
	fmt.Println("")
	fmt.Println("This will remove all wwt data:")
	fmt.Printf("  Config & store: %s\n", configDir)
	fmt.Println("")
	fmt.Println("Store files outside this directory (--store or WWT_STORE_PATH)")
	fmt.Println("are left alone.")
	fmt.Println("")
	fmt.Print("Are you sure? (y/N) ")

	var answer string
	fmt.Scanln(&answer)
	if answer != "y" && answer != "Y" {
		fmt.Println("Cancelled.")
		return
	}

	if err := os.RemoveAll(configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", configDir, err)
		os.Exit(1)
	}
	fmt.Printf("Removed %s\n", configDir)

	// Find and report binary location
	exe, err := os.Executable()
	if err == nil {
		fmt.Printf("\nTo complete removal, delete the binary:\n  rm %s\n", exe)
	}
	fmt.Println("\nwwt has been uninstalled.")
}

func printHelp() {
	fmt.Printf(`wwt %s - remember what that command was

Usage:
  wwt                                  Open the interactive picker
  wwt remember <name> <description>    Remember a thing (alias: set)
  wwt find [query]                     Find things by description (alias: get)
  wwt forget <name>                    Forget a thing (alias: delete)
  wwt list                             Show the whole store, rendered
  wwt --version                        Print version and exit
  wwt --help                           Show this help
  wwt --update                         Update to the latest version
  wwt --uninstall                      Remove all wwt data

The picker prints the selected name to stdout, so it nests in command
substitution: $(wwt).

Store path (priority: flag > env > config > default):
  --store <path>       Use a custom store file
  WWT_STORE_PATH       Environment variable override
  store.path           Key in config.yaml
  Default:             %s

Configuration:
  Config is stored in %s
  Override the directory with the WWT_CONFIG_DIR environment variable.

Examples:
  wwt remember "ls -l" "list files with longer format"
  wwt find "list files"
  wwt find ""                          List everything (same as plain: wwt find)
  wwt forget "ls -l"
  WWT_STORE_PATH=/tmp/store.json wwt find docker
`, version, config.DefaultStorePath(), config.ConfigFile())
}
