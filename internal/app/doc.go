// Package app wires the editor components into a runnable application.
//
// An Application owns the logger, the configuration, the command
// dispatcher with its registered handlers, the Lua plugin host, and the
// open documents. Front ends (the CLI, tests, an embedding host) open a
// document, set its selections, and dispatch commands by name:
//
//	a, err := app.New(app.Options{})
//	doc, err := a.OpenFile("notes.txt")
//	doc.SelectAll()
//	res, err := a.Justify(0) // 0 keeps the command's default width
//	err = doc.Save()
package app
