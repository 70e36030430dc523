package zellij

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	hoperrors "github.com/zhubert/hopper/internal/errors"
	"github.com/zhubert/hopper/internal/logger"
)

// ErrInvalidSessionName is returned for names that could confuse zellij's
// session targeting.
var ErrInvalidSessionName = errors.New("invalid session name")

// validSessionNameRe matches the charset the listing grammar accepts.
var validSessionNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSessionName checks that a session name contains only safe
// characters. Names outside this charset would also be unparseable in a
// later listing.
func ValidateSessionName(name string) error {
	if name == "" || !validSessionNameRe.MatchString(name) {
		return fmt.Errorf("%w %q: must match %s", ErrInvalidSessionName, name, validSessionNameRe.String())
	}
	return nil
}

// Zellij wraps zellij session operations via subprocess.
type Zellij struct {
	bin string
}

// New creates a Zellij wrapper. An empty bin uses "zellij" from PATH.
func New(bin string) *Zellij {
	if bin == "" {
		bin = "zellij"
	}
	return &Zellij{bin: bin}
}

// Bin returns the zellij binary this wrapper invokes.
func (z *Zellij) Bin() string {
	return z.bin
}

// run executes a zellij command and returns raw stdout.
func (z *Zellij) run(args ...string) (string, error) {
	cmd := exec.Command(z.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), z.wrapError(err, stderr.String(), args)
	}
	return stdout.String(), nil
}

// wrapError wraps zellij errors with context from stderr.
func (z *Zellij) wrapError(err error, stderr string, args []string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("zellij %s: %s", args[0], stderr)
	}
	return fmt.Errorf("zellij %s: %w", args[0], err)
}

// noSessions reports whether the command output is zellij's "nothing is
// running" notice, which it prints alongside a non-zero exit.
func noSessions(out string) bool {
	return strings.Contains(strings.ToLower(out), "no active zellij sessions")
}

// ListSessions runs `zellij list-sessions` and parses its output. A server
// with no sessions yields an empty listing, not an error.
func (z *Zellij) ListSessions() ([]Session, error) {
	log := logger.WithComponent("zellij")

	out, err := z.run("list-sessions")
	if err != nil {
		if noSessions(out) || noSessions(err.Error()) {
			log.Debug("no active sessions")
			return []Session{}, nil
		}
		return nil, hoperrors.ListSessionsFailed(err)
	}

	sessions, err := ParseSessions(out)
	if err != nil {
		return nil, err
	}
	log.Debug("listed sessions", "count", len(sessions))
	return sessions, nil
}

// DeleteSession removes a (typically exited) session so it can be created
// fresh.
func (z *Zellij) DeleteSession(name string) error {
	if err := ValidateSessionName(name); err != nil {
		return err
	}
	if _, err := z.run("delete-session", name); err != nil {
		return hoperrors.E(hoperrors.Op("zellij.DeleteSession"), hoperrors.KindMux,
			fmt.Sprintf("failed to delete session %q", name), err)
	}
	return nil
}
