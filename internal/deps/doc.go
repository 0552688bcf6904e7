// Package deps checks for the external programs the wallpaper backends shell
// out to.
package deps
