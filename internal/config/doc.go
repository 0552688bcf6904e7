// Package config loads, normalizes, and validates bingpaper configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the BING_PAPER_HOME environment
// variable for the picture directory. A configuration without a picture
// directory fails to load with faults.ErrConfigMissing before any other work
// happens.
package config
