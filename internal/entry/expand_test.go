package entry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/hopper/internal/errors"
)

// mkdirs creates the named directories under root and returns root.
func mkdirs(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return root
}

func TestExpand_ConcretePathsAreIdempotent(t *testing.T) {
	root := mkdirs(t, "alpha", "beta", "gamma")

	entries := []Entry{
		{Path: filepath.Join(root, "beta")},
		{Path: filepath.Join(root, "alpha"), Layout: "dev"},
		{Path: filepath.Join(root, "gamma")},
	}

	expanded, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if len(expanded) != len(entries) {
		t.Fatalf("Expected %d entries, got %d", len(entries), len(expanded))
	}
	for i := range entries {
		if expanded[i] != entries[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, entries[i], expanded[i])
		}
	}
}

func TestExpand_GlobProducesOneEntryPerMatch(t *testing.T) {
	root := mkdirs(t, "proj-a", "proj-b", "other")

	expanded, err := Expand([]Entry{{Path: filepath.Join(root, "proj-*"), Layout: "dev"}})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if len(expanded) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(expanded))
	}
	for _, e := range expanded {
		if e.Layout != "dev" {
			t.Errorf("Layout should be carried to each match, got %+v", e)
		}
	}
	if expanded[0].Path != filepath.Join(root, "proj-a") || expanded[1].Path != filepath.Join(root, "proj-b") {
		t.Errorf("Unexpected match order: %+v", expanded)
	}
}

func TestExpand_DuplicateAcrossEntries_FirstWins(t *testing.T) {
	root := mkdirs(t, "proj-a", "proj-b")

	entries := []Entry{
		{Path: filepath.Join(root, "proj-a")},
		{Path: filepath.Join(root, "proj-*")},
	}

	expanded, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	// proj-a must appear exactly once, attributed to the first entry;
	// the glob contributes only proj-b.
	if len(expanded) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(expanded), expanded)
	}
	if expanded[0].Path != filepath.Join(root, "proj-a") {
		t.Errorf("First emitted path should be proj-a, got %q", expanded[0].Path)
	}
	if expanded[1].Path != filepath.Join(root, "proj-b") {
		t.Errorf("Second emitted path should be proj-b, got %q", expanded[1].Path)
	}
}

func TestExpand_DuplicateAcrossEntries_LayoutOfFirstWins(t *testing.T) {
	root := mkdirs(t, "proj")

	entries := []Entry{
		{Path: filepath.Join(root, "proj"), Layout: "first"},
		{Path: filepath.Join(root, "pro*"), Layout: "second"},
	}

	expanded, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if len(expanded) != 1 {
		t.Fatalf("Expected 1 entry, got %d: %+v", len(expanded), expanded)
	}
	if expanded[0].Layout != "first" {
		t.Errorf("The first entry's layout should win, got %q", expanded[0].Layout)
	}
}

func TestExpand_ZeroMatchesContributesNothing(t *testing.T) {
	root := mkdirs(t, "proj")

	entries := []Entry{
		{Path: filepath.Join(root, "nope-*")},
		{Path: filepath.Join(root, "proj")},
	}

	expanded, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand should not fail on zero matches: %v", err)
	}
	if len(expanded) != 1 || expanded[0].Path != filepath.Join(root, "proj") {
		t.Errorf("Expected only the existing path, got %+v", expanded)
	}
}

func TestExpand_MissingLiteralPathIsDropped(t *testing.T) {
	root := t.TempDir()

	expanded, err := Expand([]Entry{{Path: filepath.Join(root, "does-not-exist")}})
	if err != nil {
		t.Fatalf("Expand should not fail on a missing literal path: %v", err)
	}
	if len(expanded) != 0 {
		t.Errorf("Missing literal path should contribute nothing, got %+v", expanded)
	}
}

func TestExpand_BadPatternAbortsExpansion(t *testing.T) {
	root := mkdirs(t, "proj")

	entries := []Entry{
		{Path: filepath.Join(root, "proj")},
		{Path: "["},
	}

	_, err := Expand(entries)
	if err == nil {
		t.Fatal("Expand should fail on a malformed pattern")
	}
	if !errors.Is(err, errors.KindPattern) {
		t.Errorf("Expected KindPattern, got %v", err)
	}
}

func TestExpand_NonUTF8PathAbortsExpansion(t *testing.T) {
	_, err := Expand([]Entry{{Path: "/bad/\xff\xfe"}})
	if err == nil {
		t.Fatal("Expand should fail on a non-UTF-8 path")
	}
	if !errors.Is(err, errors.KindEncoding) {
		t.Errorf("Expected KindEncoding, got %v", err)
	}
}

func TestExpand_OrderFollowsStoredOrder(t *testing.T) {
	root := mkdirs(t, "a1", "a2", "z1")

	entries := []Entry{
		{Path: filepath.Join(root, "z1")},
		{Path: filepath.Join(root, "a*")},
	}

	expanded, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "z1"),
		filepath.Join(root, "a1"),
		filepath.Join(root, "a2"),
	}
	if len(expanded) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(expanded))
	}
	for i, w := range want {
		if expanded[i].Path != w {
			t.Errorf("Position %d: expected %q, got %q", i, w, expanded[i].Path)
		}
	}
}
