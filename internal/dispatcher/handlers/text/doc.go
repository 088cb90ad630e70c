// Package text provides handlers that reshape selected text.
//
// The justify_text command re-wraps every selection in the active editor to
// a fixed width and pads each line so it fills that width. See package
// justify for the layout rules.
package text
