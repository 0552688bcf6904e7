// Package runlock serializes bingpaper invocations that change state with a
// non-blocking file lock.
package runlock
