// Package zellij interprets zellij's session listing and decides how a
// desired session should be launched: attach to a live session, resurrect
// and recreate an exited one, or create a fresh one.
package zellij

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zhubert/hopper/internal/errors"
)

// Session is one record parsed from a `zellij list-sessions` listing.
type Session struct {
	Name   string
	Exited bool
}

// ParseError reports a listing that violates the grammar. Offset is the
// byte position of the failure; Rules lists the labeled grammar rules
// active at that point, outermost first.
type ParseError struct {
	Offset int
	Rules  []string
	Msg    string
}

func (e *ParseError) Error() string {
	if len(e.Rules) == 0 {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("parse error at offset %d: %s (in %s)", e.Offset, e.Msg, strings.Join(e.Rules, " > "))
}

// statusExited is what zellij prints for a dead but resurrectable session.
const statusExited = "EXITED - attach to resurrect"

// statusCurrent marks the session the caller is currently inside.
const statusCurrent = "current"

// ParseSessions parses the free-text output of `zellij list-sessions` into
// session records, in listing order.
//
// The listing is line-oriented, one session per line, with one optional
// trailing blank line:
//
//	name [dimensions] (status)
//
// The bracketed payload is opaque and discarded; only bracket balance
// matters. Session names are restricted to alphanumerics, '-' and '_',
// since they feed directly into session-targeting commands. A line that
// does not match the grammar fails the whole parse rather than being
// skipped: silently omitting a session could cause a spurious duplicate to
// be created later.
func ParseSessions(input string) ([]Session, error) {
	if !utf8.ValidString(input) {
		return nil, errors.ListingNotUTF8()
	}

	s := &scanner{input: input}
	sessions, perr := s.parseList()
	if perr != nil {
		return nil, errors.E(errors.Op("zellij.ParseSessions"), errors.KindParse, perr)
	}
	return sessions, nil
}

// scanner is a cursor over the listing text. The rules slice is the stack
// of grammar labels currently being parsed, used to build error context.
type scanner struct {
	input string
	pos   int
	rules []string
}

func (s *scanner) enter(rule string) func() {
	s.rules = append(s.rules, rule)
	return func() { s.rules = s.rules[:len(s.rules)-1] }
}

func (s *scanner) failf(format string, args ...interface{}) *ParseError {
	rules := make([]string, len(s.rules))
	copy(rules, s.rules)
	return &ParseError{Offset: s.pos, Rules: rules, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	return s.input[s.pos]
}

// takeLineEnding consumes "\n" or "\r\n" and reports whether one was found.
func (s *scanner) takeLineEnding() bool {
	if s.pos < len(s.input) && s.input[s.pos] == '\n' {
		s.pos++
		return true
	}
	if s.pos+1 < len(s.input) && s.input[s.pos] == '\r' && s.input[s.pos+1] == '\n' {
		s.pos += 2
		return true
	}
	return false
}

// takeLiteral consumes the exact string and reports whether it was present.
func (s *scanner) takeLiteral(lit string) bool {
	if strings.HasPrefix(s.input[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isNameChar(c byte) bool {
	return isAlphanumeric(c) || c == '-' || c == '_'
}

// isMultispace matches any whitespace permitted inside the brackets.
func isMultispace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// session-list := (session-entry (line-ending session-entry)*)? line-ending?
func (s *scanner) parseList() ([]Session, *ParseError) {
	defer s.enter("session list")()

	sessions := []Session{}

	// Empty listing, with or without the optional trailing line ending.
	if s.eof() {
		return sessions, nil
	}
	if s.takeLineEnding() {
		if !s.eof() {
			return nil, s.failf("expected end of input")
		}
		return sessions, nil
	}

	sess, perr := s.parseEntry()
	if perr != nil {
		return nil, perr
	}
	sessions = append(sessions, sess)

	for s.takeLineEnding() {
		if s.eof() {
			return sessions, nil
		}
		sess, perr := s.parseEntry()
		if perr != nil {
			return nil, perr
		}
		sessions = append(sessions, sess)
	}

	if !s.eof() {
		return nil, s.failf("expected line ending or end of input")
	}
	return sessions, nil
}

// session-entry := session-name ' ' '[' dimensions ']' space* status?
func (s *scanner) parseEntry() (Session, *ParseError) {
	defer s.enter("session entry")()

	name, perr := s.parseName()
	if perr != nil {
		return Session{}, perr
	}

	if s.eof() || s.peek() != ' ' {
		return Session{}, s.failf("expected ' ' after session name")
	}
	s.pos++

	if s.eof() || s.peek() != '[' {
		return Session{}, s.failf("expected '['")
	}
	s.pos++

	// dimensions := (alphanumeric | whitespace)*  — opaque, discarded
	for !s.eof() && (isAlphanumeric(s.peek()) || isMultispace(s.peek())) {
		s.pos++
	}

	if s.eof() || s.peek() != ']' {
		return Session{}, s.failf("expected ']'")
	}
	s.pos++

	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t') {
		s.pos++
	}

	exited := false
	if !s.eof() && s.peek() == '(' {
		s.pos++
		exited, perr = s.parseStatus()
		if perr != nil {
			return Session{}, perr
		}
		if s.eof() || s.peek() != ')' {
			return Session{}, s.failf("expected ')'")
		}
		s.pos++
	}

	return Session{Name: name, Exited: exited}, nil
}

// session-name := (alphanumeric | '-' | '_')+
func (s *scanner) parseName() (string, *ParseError) {
	defer s.enter("session name")()

	start := s.pos
	for !s.eof() && isNameChar(s.peek()) {
		s.pos++
	}
	if s.pos == start {
		return "", s.failf("expected session name")
	}
	return s.input[start:s.pos], nil
}

// status-word := "EXITED - attach to resurrect" | "current" | <absent>
func (s *scanner) parseStatus() (bool, *ParseError) {
	defer s.enter("session status")()

	if s.takeLiteral(statusExited) {
		return true, nil
	}
	s.takeLiteral(statusCurrent)
	return false, nil
}
