// Package launch turns a chosen entry into a running zellij session inside
// a wezterm tab.
package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/zhubert/hopper/internal/config"
	"github.com/zhubert/hopper/internal/entry"
	"github.com/zhubert/hopper/internal/logger"
	"github.com/zhubert/hopper/internal/zellij"
)

// SessionName derives the zellij session name from a project path: its
// final component, with characters outside the session-name charset
// replaced by '-' so the name survives listing and targeting commands.
func SessionName(path string) string {
	base := filepath.Base(path)
	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Launcher spawns wezterm tabs running zellij sessions.
type Launcher struct {
	settings *config.Settings
	mux      *zellij.Zellij
}

// New creates a Launcher using the binaries named in settings.
func New(settings *config.Settings) *Launcher {
	return &Launcher{
		settings: settings,
		mux:      zellij.New(settings.ZellijBin),
	}
}

// Open resolves the session for the entry's path and opens it in a wezterm
// tab (or window). The entry's path must be concrete, not a pattern.
func (l *Launcher) Open(e entry.Entry, newWindow bool) error {
	log := logger.WithComponent("launch")

	name := SessionName(e.Path)
	if err := zellij.ValidateSessionName(name); err != nil {
		return err
	}

	sessions, err := l.mux.ListSessions()
	if err != nil {
		return err
	}

	decision := zellij.Resolve(name, sessions)
	log.Debug("resolved session", "name", name, "decision", decision.Kind.String())

	layout := e.Layout
	if layout == "" {
		layout = l.settings.DefaultLayout
	}

	switch decision.Kind {
	case zellij.Attach:
		return l.spawnTab(e.Path, newWindow, attachArgs(l.mux.Bin(), decision.Name))
	case zellij.Recreate:
		if err := l.mux.DeleteSession(decision.Name); err != nil {
			return err
		}
		return l.spawnTab(e.Path, newWindow, createArgs(l.mux.Bin(), decision.Name, layout))
	default:
		return l.spawnTab(e.Path, newWindow, createArgs(l.mux.Bin(), decision.Name, layout))
	}
}

// attachArgs is the command run inside the tab to attach to a live session.
func attachArgs(bin, name string) []string {
	return []string{bin, "attach", name}
}

// createArgs is the command run inside the tab to create a fresh session.
func createArgs(bin, name, layout string) []string {
	args := []string{bin, "--session", name}
	if layout != "" {
		args = append(args, "--layout", layout)
	}
	return args
}

// weztermArgs builds the `wezterm cli spawn` argument list that runs the
// inner command in a tab rooted at cwd.
func weztermArgs(cwd string, newWindow bool, inner []string) []string {
	args := []string{"cli", "spawn", "--cwd", cwd}
	if newWindow {
		args = append(args, "--new-window")
	}
	args = append(args, "--")
	return append(args, inner...)
}

// spawnTab runs the inner command in a new wezterm tab and waits for the
// spawn command itself to finish, reporting its exit status.
func (l *Launcher) spawnTab(cwd string, newWindow bool, inner []string) error {
	log := logger.WithComponent("launch")

	args := weztermArgs(cwd, newWindow, inner)
	log.Debug("spawning tab", "bin", l.settings.WeztermBin, "args", strings.Join(args, " "))

	cmd := exec.Command(l.settings.WeztermBin, args...)
	cmd.Dir = cwd
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to spawn tab: %w", err)
	}
	return nil
}
