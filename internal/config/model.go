package config

// Model is the unified, format-agnostic representation of all loaded
// configuration files.
type Model struct {
	// Root is the top of the seed hierarchy. Exactly one root must be
	// defined across all files.
	Root *Employee
	// Settings holds engine tuning knobs.
	Settings Settings
	// Operations is the script to replay, in file order then source order.
	Operations []*Operation
}

// Employee is the format-agnostic representation of one hierarchy member
// and its direct reports.
type Employee struct {
	ID      int
	Name    string
	Reports []*Employee
	// Source is a human-readable location used in error messages.
	Source string
}

// Settings configures the hierarchy engine.
type Settings struct {
	// HistoryLimit caps retained undo entries. Nil means "not set".
	HistoryLimit *int
}

// OpKind identifies a scripted operation.
type OpKind string

const (
	OpMove OpKind = "move"
	OpUndo OpKind = "undo"
	OpRedo OpKind = "redo"
)

// Operation is one scripted engine call.
type Operation struct {
	Kind       OpKind
	Employee   int
	Supervisor int
	Source     string
}
