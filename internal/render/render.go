// Package render substitutes normalized record values into note
// templates.
//
// A template may open with a frontmatter block fenced by lines of three
// hyphens. Placeholders inside the fence render with the quoted header
// encoding, everything after it with the plain body encoding, so the
// same field can serve both a metadata line and free text. Tokens that
// match no field are deleted rather than leaked into the note, and one
// bad field never aborts the whole render; failures are reported as
// diagnostics next to the output.
package render

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kinonote/internal/fieldfmt"
	"kinonote/internal/mediashow"
)

// FieldError records a substitution failure for a single field.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

var (
	placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)
	frontmatterPattern = regexp.MustCompile(`(?s)\A(---\r?\n)(.*?)(\r?\n---(?:\r?\n|\z))(.*)\z`)
)

// Render substitutes show's fields into template using the dual
// header/body encoding. A nil show returns the template unmodified
// together with a diagnostic.
func Render(show *mediashow.MovieShow, template string) (string, []FieldError) {
	if show == nil {
		return template, []FieldError{{Err: errors.New("record is nil")}}
	}
	return RenderValues(show.Placeholders(), template)
}

// RenderValues is the substitution core. It depends only on the shape
// of the field map, so callers can feed values that never came from a
// catalog record.
func RenderValues(values map[string]any, template string) (string, []FieldError) {
	var diags []FieldError

	var out string
	if match := frontmatterPattern.FindStringSubmatch(template); match != nil {
		header := substitute(match[2], values, headerValue, &diags)
		body := substitute(match[4], values, bodyValue, &diags)
		out = match[1] + header + match[3] + body
	} else {
		out = substitute(template, values, bodyValue, &diags)
	}

	out = placeholderPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out), diags
}

// RenderBody substitutes with the plain body encoding only, ignoring
// any frontmatter fence. File naming uses this path.
func RenderBody(show *mediashow.MovieShow, template string) (string, []FieldError) {
	if show == nil {
		return template, []FieldError{{Err: errors.New("record is nil")}}
	}
	var diags []FieldError
	out := substitute(template, show.Placeholders(), bodyValue, &diags)
	out = placeholderPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out), diags
}

// substitute resolves known placeholders in one template section.
// Unknown tokens and failed fields stay in place for the final cleanup
// pass to delete.
func substitute(section string, values map[string]any, encode func(any) string, diags *[]FieldError) string {
	return placeholderPattern.ReplaceAllStringFunc(section, func(token string) string {
		name := strings.ToLower(token[2 : len(token)-2])
		value, ok := values[name]
		if !ok {
			return token
		}
		text, err := encodeField(name, value, encode)
		if err != nil {
			*diags = append(*diags, FieldError{Field: name, Err: err})
			return token
		}
		return text
	})
}

// encodeField isolates one field's encoding so a panic there cannot
// abort the render.
func encodeField(name string, value any, encode func(any) string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encode %s: %v", name, r)
		}
	}()
	return encode(value), nil
}

// headerValue renders a field for the frontmatter block. Multi-element
// sequences become one quoted token with inner quotes escaped. A
// single element keeps its own formatting; a bare wiki link picks up
// quotes so the metadata line stays parseable.
func headerValue(value any) string {
	seq, ok := value.([]string)
	if !ok {
		return scalarValue(value)
	}
	switch len(seq) {
	case 0:
		return ""
	case 1:
		single := seq[0]
		if fieldfmt.IsQuoted(single) {
			return single
		}
		if fieldfmt.IsWikiLink(single) {
			return fieldfmt.Quote(single)
		}
		return single
	default:
		escaped := make([]string, len(seq))
		for i, element := range seq {
			escaped[i] = strings.ReplaceAll(element, `"`, `\"`)
		}
		return fieldfmt.Quote(strings.Join(escaped, ", "))
	}
}

// bodyValue renders a field for free text: wrapping quotes come off
// each element and the remainder joins with commas.
func bodyValue(value any) string {
	seq, ok := value.([]string)
	if !ok {
		return scalarValue(value)
	}
	if len(seq) == 0 {
		return ""
	}
	stripped := make([]string, len(seq))
	for i, element := range seq {
		stripped[i] = fieldfmt.Unquote(element)
	}
	return strings.Join(stripped, ", ")
}

func scalarValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
