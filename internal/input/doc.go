// Package input defines the actions that drive the command dispatcher.
//
// An Action names a command and carries its arguments. Actions are produced
// by whatever front end is driving the editor: the command line, a Lua
// plugin, or an embedding host.
package input
