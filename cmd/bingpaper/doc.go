// Package main hosts the bingpaper CLI entrypoint and command graph.
//
// The root command carries the classic flag surface: --new and --global fetch
// the daily picture, --list prints the cache, --index selects a cached picture
// and no flag picks one at random; --screen chooses the monitor. Subcommands
// cover screen inspection, environment checks and configuration scaffolding.
//
// Configuration, logging and component wiring live in commandContext so the
// commands stay thin; behavior belongs in the internal packages.
package main
