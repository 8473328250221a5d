// Package history persists validated stereo invocations in a SQLite
// database so past runs can be listed and replayed. One database lives
// in the user's data directory and accumulates runs across projects.
package history
