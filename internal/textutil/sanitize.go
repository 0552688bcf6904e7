package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// PictureExt is appended to every derived picture name; the feed only
	// serves JPEG assets.
	PictureExt = ".jpg"
	// UntitledName replaces a title segment that sanitizes to nothing.
	UntitledName = "untitled"
)

var separatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

// PictureFileName derives the cache file name for a picture from its
// attribution text. The title is everything before the first "(" (or the
// first "©" when there is no parenthesis) minus the single separator
// character that precedes the marker. Forward and back slashes become
// underscores so the result is a single path element on every platform.
func PictureFileName(copyright string) string {
	title := norm.NFC.String(copyright)

	marker := strings.IndexRune(title, '(')
	if marker < 0 {
		marker = strings.IndexRune(title, '©')
	}
	if marker >= 0 {
		title = title[:marker]
		if _, size := utf8.DecodeLastRuneInString(title); size > 0 {
			title = title[:len(title)-size]
		}
	}

	title = separatorReplacer.Replace(title)
	if strings.TrimSpace(title) == "" {
		title = UntitledName
	}
	return title + PictureExt
}
