// internal/nodeid/doc.go

/*
Package nodeid provides the typed identifier used for every member of the
hierarchy.

Identifiers are plain decimal integers, unique across a whole tree. This
package centralizes their parsing and formatting so that CLI arguments,
configuration files and log attributes all agree on one representation.
*/
package nodeid
