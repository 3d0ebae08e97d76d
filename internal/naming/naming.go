// Package naming derives collision-free note file names from a
// normalized record.
package naming

import (
	"fmt"
	"strconv"
	"strings"

	"kinonote/internal/i18n"
	"kinonote/internal/mediashow"
	"kinonote/internal/render"
)

// illegalReplacer strips characters that cannot appear in a note file
// name on common filesystems.
var illegalReplacer = strings.NewReplacer(
	"\\", "",
	"/", "",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// Sanitize strips the illegal characters from a file name candidate
// and trims surrounding whitespace.
func Sanitize(name string) string {
	return strings.TrimSpace(illegalReplacer.Replace(name))
}

// MakeFileName builds the destination file name for show, with the .md
// extension included. nameFormat, when non-empty, renders through the
// plain template path; otherwise the name is "<title> (<year>)" with a
// localized placeholder standing in for a missing title or year. exists
// receives candidate file names (not full paths) and reports whether
// one is already taken; on a collision a localized copy suffix with an
// incrementing index is appended until a free name turns up.
func MakeFileName(show *mediashow.MovieShow, nameFormat string, messages *i18n.Bundle, exists func(string) bool) string {
	base := Sanitize(baseName(show, nameFormat, messages))
	if base == "" {
		base = messages.Lookup("fileName.unknown")
	}

	name := base + ".md"
	if !exists(name) {
		return name
	}
	copyWord := messages.Lookup("fileName.copy")
	for index := 1; ; index++ {
		name = fmt.Sprintf("%s (%s[%d]).md", base, copyWord, index)
		if !exists(name) {
			return name
		}
	}
}

func baseName(show *mediashow.MovieShow, nameFormat string, messages *i18n.Bundle) string {
	if strings.TrimSpace(nameFormat) != "" {
		rendered, _ := render.RenderBody(show, nameFormat)
		return rendered
	}
	title := show.NameForFile
	if title == "" {
		title = messages.Lookup("fileName.unknown")
	}
	year := strconv.Itoa(show.Year)
	if show.Year == 0 {
		year = messages.Lookup("fileName.unknown")
	}
	return fmt.Sprintf("%s (%s)", title, year)
}
