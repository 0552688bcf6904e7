// Package textutil turns untrusted feed text into safe picture file names.
//
// PictureFileName is deterministic: the same attribution text always yields
// the same name, which is what lets the picture cache treat a repeated
// download of the same day as a hit.
package textutil
