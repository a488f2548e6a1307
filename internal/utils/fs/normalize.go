// Package fs holds filename and directory helpers.
package fs

import (
	"regexp"
	"vidgrab/internal/domain/consts"
)

// forbiddenChars matches characters most filesystems reject in a filename.
var forbiddenChars = regexp.MustCompile("[" + regexp.QuoteMeta(consts.ForbiddenChars) + "]")

// SanitizeFilename replaces each of < > : " / \ | ? * with an underscore and
// truncates the result to 200 characters.
//
// Truncation counts runes, so multibyte titles are never cut mid-character.
func SanitizeFilename(name string) string {
	name = forbiddenChars.ReplaceAllLiteralString(name, string(consts.FilenameReplacement))

	runes := []rune(name)
	if len(runes) > consts.MaxFilenameLen {
		name = string(runes[:consts.MaxFilenameLen])
	}
	return name
}
