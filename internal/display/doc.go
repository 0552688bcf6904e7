// Package display abstracts the platform mechanisms that enumerate monitor
// wallpaper slots and assign a picture to one of them.
//
// The backend is chosen at build time: XFCE's xfconf store on Linux and the
// BSDs (one output per connected monitor), SystemParametersInfoW on Windows
// and AppleScript on macOS (a single synthetic output each). Callers only see
// the Backend interface and address outputs by their enumeration index.
package display
