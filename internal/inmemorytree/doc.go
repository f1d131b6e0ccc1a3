// Package inmemorytree provides the in-memory implementation of the
// nodestore.Store interface. The whole hierarchy lives in process memory as
// a plain owned tree; lookups are explicit-stack depth-first searches from
// the root, so hierarchy depth is bounded by heap, not by call stack.
package inmemorytree
