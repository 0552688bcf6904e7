// Package preflight provides readiness checks for the filesystem paths, the
// image feed and the wallpaper backend that bingpaper depends on.
//
// The CLI "bingpaper doctor" command runs RunAll plus the backend checks and
// renders the results as a table. Checks never mutate state; a failed check
// is reported, not fatal.
package preflight
