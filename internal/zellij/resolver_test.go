package zellij

import "testing"

func TestResolve_AbsentCreates(t *testing.T) {
	sessions, err := ParseSessions("other [80x24]\n")
	if err != nil {
		t.Fatalf("ParseSessions failed: %v", err)
	}
	d := Resolve("work", sessions)
	if d.Kind != Create || d.Name != "work" {
		t.Errorf("Expected Create(work), got %v(%s)", d.Kind, d.Name)
	}
}

func TestResolve_LiveAttaches(t *testing.T) {
	sessions, err := ParseSessions("work [80x24] (current)\n")
	if err != nil {
		t.Fatalf("ParseSessions failed: %v", err)
	}
	d := Resolve("work", sessions)
	if d.Kind != Attach || d.Name != "work" {
		t.Errorf("Expected Attach(work), got %v(%s)", d.Kind, d.Name)
	}
}

func TestResolve_ExitedRecreates(t *testing.T) {
	sessions, err := ParseSessions("work [80x24] (EXITED - attach to resurrect)\n")
	if err != nil {
		t.Fatalf("ParseSessions failed: %v", err)
	}
	d := Resolve("work", sessions)
	if d.Kind != Recreate || d.Name != "work" {
		t.Errorf("Expected Recreate(work), got %v(%s)", d.Kind, d.Name)
	}
}

func TestResolve_EmptyListingCreates(t *testing.T) {
	d := Resolve("work", nil)
	if d.Kind != Create {
		t.Errorf("Expected Create for empty listing, got %v", d.Kind)
	}
}

func TestResolve_ExactCaseSensitiveMatch(t *testing.T) {
	sessions := []Session{
		{Name: "Work"},
		{Name: "work-2"},
	}
	d := Resolve("work", sessions)
	if d.Kind != Create {
		t.Errorf("Name match must be exact and case-sensitive, got %v", d.Kind)
	}
}

func TestResolve_FirstMatchingRecordWins(t *testing.T) {
	sessions := []Session{
		{Name: "other"},
		{Name: "work", Exited: true},
	}
	d := Resolve("work", sessions)
	if d.Kind != Recreate {
		t.Errorf("Expected Recreate, got %v", d.Kind)
	}
}

func TestDecisionKind_String(t *testing.T) {
	if Create.String() != "create" || Attach.String() != "attach" || Recreate.String() != "recreate" {
		t.Error("Unexpected DecisionKind strings")
	}
}
