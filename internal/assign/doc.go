// Package assign implements the wallpaper selection policies: newest from the
// feed (regional or global), an explicit picture from the cache listing, or a
// random cached picture, each applied to one monitor output by index.
package assign
