package picker

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/zhubert/hopper/internal/entry"
	"github.com/zhubert/hopper/internal/logger"
)

// chooserCommand returns the external chooser binary and arguments for the
// platform: anyrun with the stdin plugin on Linux, choose on macOS.
func chooserCommand(goos string) (string, []string, error) {
	switch goos {
	case "linux":
		return "anyrun", []string{"--plugins", "libstdin.so", "--show-results-immediately", "true"}, nil
	case "darwin":
		return "choose", nil, nil
	default:
		return "", nil, fmt.Errorf("no GUI chooser available on %s", goos)
	}
}

// resolveSelection maps the chooser's output line back to its entry. An
// empty selection is an abort; an unknown line is an error, since it means
// the chooser echoed something we never offered.
func resolveSelection(out string, entries []entry.Entry, byDisplay map[string]int) (entry.Entry, error) {
	selected := strings.TrimSpace(out)
	if selected == "" {
		return entry.Entry{}, ErrAborted
	}
	i, ok := byDisplay[selected]
	if !ok {
		return entry.Entry{}, fmt.Errorf("unknown entry (`%s`) got selected", selected)
	}
	return entries[i], nil
}

// PickGUI presents the entries through an external graphical chooser,
// writing display strings to its stdin and reading the selected line back.
// Cancelling (empty selection) returns ErrAborted.
func PickGUI(entries []entry.Entry) (entry.Entry, error) {
	log := logger.WithComponent("picker")

	name, args, err := chooserCommand(runtime.GOOS)
	if err != nil {
		return entry.Entry{}, err
	}

	_, byDisplay := options(entries)

	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return entry.Entry{}, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return entry.Entry{}, err
	}

	if err := cmd.Start(); err != nil {
		return entry.Entry{}, fmt.Errorf("failed to start chooser %s: %w", name, err)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintln(stdin, e.String()); err != nil {
			break
		}
	}
	stdin.Close()

	out, readErr := io.ReadAll(stdout)
	waitErr := cmd.Wait()
	if readErr != nil {
		return entry.Entry{}, readErr
	}
	if waitErr != nil {
		log.Debug("chooser exited non-zero", "chooser", name, "error", waitErr)
	}

	return resolveSelection(string(out), entries, byDisplay)
}
