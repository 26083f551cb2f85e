// Package cli provides the interactive picdiary command-line client.
//
// It wires configuration, the API services and an interactive REPL. Typical
// flow: login, start a background connectivity watcher, then run commands.
//
// Key features:
//   - Register / Login / Logout
//   - Interview: answer questions, then receive a titled, illustrated page
//   - Write a page by hand
//   - List / Show / Next / Prev with wraparound navigation
//   - Edit / Delete pages
//   - Export pages as markdown plus PNG files
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
