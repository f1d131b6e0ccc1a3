// Package engine is the hierarchy engine: the facade that composes the node
// store, the move operator and the history log, and exposes Move, Undo and
// Redo as the only mutators.
//
// # Responsibilities
//
//   - **Resolution:** identifiers are resolved against the live tree on every
//     call; history entries never hold node references.
//   - **Atomicity:** each mutator validates before it edits and records
//     history only after a successful edit, under a single write lock.
//   - **Outcomes:** rejections are reported as typed outcomes, not errors.
//     Errors are reserved for integrity faults and a closed engine.
//
// # Lifecycle
//
//  1. **Created** with engine.New from caller-supplied seed data
//  2. **Mutated** through Move, Undo and Redo
//  3. **Read** through Snapshot, FindNode and History, which return copies
//  4. **Closed** explicitly; a closed engine refuses every operation
package engine
