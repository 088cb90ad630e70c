package config

import "strings"

// LoadEnv reads JUSTIFY_* overrides through lookup.
//
//	JUSTIFY_LOG_LEVEL       logging.level
//	JUSTIFY_LOG_FORMAT      logging.format
//	JUSTIFY_PLUGIN_SCRIPTS  plugins.scripts (comma separated)
//	JUSTIFY_PLUGIN_TIMEOUT  plugins.timeout
func LoadEnv(lookup func(string) (string, bool)) *File {
	var f File
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		f.Logging.Level = &v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		f.Logging.Format = &v
	}
	if v, ok := lookup(EnvPrefix + "PLUGIN_SCRIPTS"); ok {
		f.Plugins.Scripts = []string{}
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Plugins.Scripts = append(f.Plugins.Scripts, s)
			}
		}
	}
	if v, ok := lookup(EnvPrefix + "PLUGIN_TIMEOUT"); ok {
		f.Plugins.Timeout = &v
	}
	return &f
}
