// Package entry defines the stored project entry and the glob expansion
// that turns stored patterns into concrete, duplicate-free candidates.
package entry

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Entry is a stored project reference: a filesystem path (possibly a glob
// pattern) with an optional zellij layout name. An empty Layout means the
// bare variant; a non-empty Layout selects a window/pane template that is
// passed through to the multiplexer verbatim.
type Entry struct {
	Path   string
	Layout string
}

// WithPath returns a copy of the entry with the path replaced. The layout,
// if any, is preserved unchanged.
func (e Entry) WithPath(path string) Entry {
	e.Path = path
	return e
}

// String renders the entry for display and selection. The result is unique
// per distinct (path, layout) pair, which the pickers rely on to map a
// selected line back to its entry.
func (e Entry) String() string {
	if e.Layout != "" {
		return fmt.Sprintf("%s with layout '%s'", strconv.Quote(e.Path), e.Layout)
	}
	return strconv.Quote(e.Path)
}

// layoutEntry is the wire shape of the layout variant.
type layoutEntry struct {
	Path   string `json:"path"`
	Layout string `json:"layout"`
}

// MarshalJSON implements the untagged wire format: the bare variant
// serializes as a plain JSON string, the layout variant as an object with
// "path" and "layout" fields. Existing stored entry lists depend on this
// shape byte-for-byte.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Layout == "" {
		return json.Marshal(e.Path)
	}
	return json.Marshal(layoutEntry{Path: e.Path, Layout: e.Layout})
}

// UnmarshalJSON accepts either wire shape: a JSON string decodes to the
// bare variant, an object with a non-empty "layout" field decodes to the
// layout variant. An object without a layout is treated as bare.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		e.Path = path
		e.Layout = ""
		return nil
	}

	var le layoutEntry
	if err := json.Unmarshal(data, &le); err != nil {
		return fmt.Errorf("entry must be a path string or a path/layout object: %w", err)
	}
	if le.Path == "" {
		return fmt.Errorf("entry object is missing a path")
	}
	e.Path = le.Path
	e.Layout = le.Layout
	return nil
}
