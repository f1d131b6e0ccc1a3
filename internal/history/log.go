// Package history implements the linear, cursor-addressed undo/redo log.
//
// The cursor counts how many entries are currently applied to the tree.
// Entries before the cursor are undo-reachable; entries at or after it are
// redo-reachable. Recording a new entry discards everything at or after the
// cursor, so the log is always a single timeline.
package history

// Log is the undo/redo log. The zero value is not usable; call New.
//
// Log is not safe for concurrent use; the engine serializes access.
type Log struct {
	entries []Entry
	cursor  int
	limit   int
}

// New creates an empty log. A positive limit caps the number of retained
// entries, evicting the oldest first; zero or negative means unbounded.
func New(limit int) *Log {
	if limit < 0 {
		limit = 0
	}
	return &Log{limit: limit}
}

// Record truncates the abandoned redo branch, appends e and moves the cursor
// to the end.
func (l *Log) Record(e Entry) {
	l.entries = append(l.entries[:l.cursor], e.Clone())
	if l.limit > 0 && len(l.entries) > l.limit {
		drop := len(l.entries) - l.limit
		clear(l.entries[:drop])
		l.entries = l.entries[drop:]
	}
	l.cursor = len(l.entries)
}

// EntryToUndo returns the most recently applied entry.
func (l *Log) EntryToUndo() (Entry, bool) {
	if l.cursor == 0 {
		return Entry{}, false
	}
	return l.entries[l.cursor-1].Clone(), true
}

// EntryToRedo returns the earliest undone entry.
func (l *Log) EntryToRedo() (Entry, bool) {
	if l.cursor >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[l.cursor].Clone(), true
}

// AdvanceAfterUndo moves the cursor back by one after a successful
// inversion. It is a no-op when nothing is undoable.
func (l *Log) AdvanceAfterUndo() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// AdvanceAfterRedo moves the cursor forward by one after a successful
// reapplication. It is a no-op when nothing is redoable.
func (l *Log) AdvanceAfterRedo() {
	if l.cursor < len(l.entries) {
		l.cursor++
	}
}

// Len returns the number of retained entries, applied or not.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cursor returns the number of applied entries.
func (l *Log) Cursor() int {
	return l.cursor
}

// Limit returns the configured capacity, zero meaning unbounded.
func (l *Log) Limit() int {
	return l.limit
}

// Entries returns a copy of all retained entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Clone()
	}
	return out
}
