// Package config loads cio settings.
//
// Sources are merged in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/cio/config.toml (or .yaml), or an
//     explicit path
//  3. CIO_ environment variables, e.g. CIO_TABLE_BORDER=double
//  4. overrides supplied by the caller, typically command-line flags
//
// The merged tree is decoded into Config with mapstructure.
package config
