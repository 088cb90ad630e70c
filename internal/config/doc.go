// Package config loads the application configuration.
//
// Settings are layered, later layers winning:
//
//  1. Built-in defaults
//  2. A configuration file, TOML or YAML by extension
//  3. Environment variables prefixed with JUSTIFY_
//
// Unknown keys in a file are rejected so that typos surface as errors
// rather than silently ignored settings.
//
// Example config.toml:
//
//	[logging]
//	level = "debug"
//	format = "json"
//
//	[plugins]
//	scripts = ["~/.config/justify/init.lua"]
//	timeout = "2s"
//
// The justification width is not a setting. Commands take it from their
// caller.
package config
