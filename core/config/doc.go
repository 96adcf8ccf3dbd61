// Package config loads the settings of the pyutils command line tool.
//
// Settings are read from a TOML or YAML document whose sections mirror the
// Settings struct:
//
//	[console]
//	separator = " "
//	terminator = "\n"
//
//	[strip]
//	chars = " \t\n\r"
//
//	[log]
//	level = "warn"
//	format = "text"
//
//	[demo]
//	work_dir = "/tmp"
//	keep_files = false
//
// Keys that are missing keep their default value. Unknown keys, malformed
// documents and invalid values are errors carrying the codes
// INVALID_FORMAT and INVALID_CONFIG; a missing file yields NOT_FOUND.
package config
