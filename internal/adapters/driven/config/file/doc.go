// Package file stores gitevents configuration in a TOML file, by default
// ~/.gitevents/config.toml. Sections map to dot-notation keys, so
//
//	[github]
//	org = "gitevents"
//
// is read with GetString("github.org").
package file
