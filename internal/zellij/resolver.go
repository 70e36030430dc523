package zellij

// DecisionKind is the action to take for a desired session name.
type DecisionKind int

const (
	// Create means no session by that name exists; create a fresh one.
	Create DecisionKind = iota
	// Attach means a live session by that name exists; attach to it.
	Attach
	// Recreate means the session exists but has exited; delete it first,
	// then create fresh.
	Recreate
)

func (k DecisionKind) String() string {
	switch k {
	case Create:
		return "create"
	case Attach:
		return "attach"
	case Recreate:
		return "recreate"
	default:
		return "unknown"
	}
}

// Decision is the resolved launch action for a named session.
type Decision struct {
	Kind DecisionKind
	Name string
}

// Resolve decides how to launch the desired session given the parsed
// listing. The name is matched exactly and case-sensitively; it is treated
// as an opaque, already-sanitized string.
func Resolve(name string, sessions []Session) Decision {
	for _, sess := range sessions {
		if sess.Name != name {
			continue
		}
		if sess.Exited {
			return Decision{Kind: Recreate, Name: name}
		}
		return Decision{Kind: Attach, Name: name}
	}
	return Decision{Kind: Create, Name: name}
}
