// Package cli provides the interactive vault command-line client.
//
// NewApp wires configuration, the backend chosen by the mode (remote server
// or local SQLite file) and the services; App.Run starts the REPL and, in
// remote mode, a background connectivity watcher.
//
// Commands:
//   - register, login, lock, logout
//   - add, list, update [id], delete [id]
//   - match <url>: entries whose website has the same origin as url
//   - export [file]: ciphertext-only snapshot, stdout by default
package cli
