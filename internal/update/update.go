package update

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

const repo = "stefanclaw/wwt"

// Result holds the outcome of an update check or apply.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	Applied         bool
}

// detect resolves the latest GitHub release for this platform.
func detect(ctx context.Context) (*selfupdate.Updater, *selfupdate.Release, bool, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, nil, false, fmt.Errorf("creating github source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source: source,
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
	})
	if err != nil {
		return nil, nil, false, fmt.Errorf("creating updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, nil, false, fmt.Errorf("checking for updates: %w", err)
	}
	return updater, latest, found, nil
}

// isNewer reports whether latest is an upgrade over current. A current
// version that is not valid semver (e.g. "dev") is older than any release.
func isNewer(latest *selfupdate.Release, current string) bool {
	if _, err := semver.NewVersion(current); err != nil {
		return true
	}
	return latest.GreaterThan(current)
}

// Check queries GitHub for the latest release and reports whether an update is
// available. It does not download or replace anything.
func Check(ctx context.Context, currentVersion string) (*Result, error) {
	_, latest, found, err := detect(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{CurrentVersion: currentVersion}
	if found {
		res.LatestVersion = latest.Version()
		res.UpdateAvailable = isNewer(latest, currentVersion)
	}
	return res, nil
}

// Apply downloads and installs the latest release, replacing the current
// binary in-place. When the binary is already current, Apply reports that
// without touching anything.
func Apply(ctx context.Context, currentVersion string) (*Result, error) {
	updater, latest, found, err := detect(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{CurrentVersion: currentVersion}
	if !found {
		return res, nil
	}
	res.LatestVersion = latest.Version()
	if !isNewer(latest, currentVersion) {
		return res, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("finding executable path: %w", err)
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("applying update: %w", err)
	}

	res.UpdateAvailable = true
	res.Applied = true
	return res, nil
}
