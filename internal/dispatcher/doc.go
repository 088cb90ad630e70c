// Package dispatcher routes actions to handlers and coordinates execution.
//
// The dispatcher owns the command table: handlers are registered under an
// action name at startup and looked up on every Dispatch. It also holds the
// active editor (engine and cursors) and builds a fresh ExecutionContext
// for each action, so handlers never reach for global state.
//
// Every dispatch is tagged with a random execution ID that appears in the
// log fields and in the result data. Handler panics are recovered and
// turned into error results.
package dispatcher
