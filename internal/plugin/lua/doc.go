// Package lua provides the Lua runtime for editor plugin scripts.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table, string
// and math libraries are opened, the file loaders are removed, and require
// only resolves safe built-ins and the editor's own "ks" module.
//
// The editor API is exposed as globals and through require("ks"):
//
//	_ks_text.justify(text [, width])   -- justify a string, width defaults to 80
//	_ks_buffer.text()                  -- active document text
//	_ks_buffer.select(start, stop)     -- add a byte-range selection
//	_ks_buffer.select_all()            -- select the whole document
//	_ks_buffer.clear_selection()       -- drop all selections
//	_ks_command.execute(name [, args]) -- run a registered command, returns its status
//	_ks_command.list()                 -- names of registered commands
//
// A State is not safe for concurrent Lua execution; calls are serialized by
// an internal mutex.
package lua
