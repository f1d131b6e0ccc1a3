// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: load the
// seed hierarchy and operation script, replay the script through the
// hierarchy engine, and write the resulting hierarchy. It is decoupled from
// any specific entrypoint like a CLI or server.
package app
