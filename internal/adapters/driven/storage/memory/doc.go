// Package memory provides in-memory implementations of driven port
// interfaces. Nothing is persisted; values live for the process lifetime.
package memory
