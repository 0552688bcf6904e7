// Package picstore manages the flat directory of cached wallpaper pictures.
//
// The directory is the only record of what has been downloaded: existence
// checks go straight to the filesystem and listing order is whatever the
// directory read returns, which callers treat as the one-based picture index
// for the current invocation.
package picstore
