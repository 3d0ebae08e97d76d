package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiDim    = "\x1b[2m"
)

// consoleHandler renders compact single-line output for interactive
// runs. Correlation fields are promoted into a subject prefix and the
// rest of the attributes trail the message as key=value pairs.
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	color  bool
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(writer io.Writer, level *slog.LevelVar) *consoleHandler {
	color := false
	if file, ok := writer.(*os.File); ok {
		color = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &consoleHandler{
		mu:     &sync.Mutex{},
		writer: writer,
		level:  level,
		color:  color,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	pairs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		pairs = appendFlattened(pairs, attr, h.groups)
	}
	record.Attrs(func(attr slog.Attr) bool {
		pairs = appendFlattened(pairs, attr, h.groups)
		return true
	})

	component := ""
	subject := make([]string, 0, 3)
	rest := pairs[:0]
	for _, pair := range pairs {
		switch pair.key {
		case FieldComponent:
			component = pair.value
		case FieldMovieID:
			subject = append(subject, "movie "+pair.value)
		case FieldStage:
			subject = append(subject, pair.value)
		case FieldRequestID:
			// Request IDs stay out of the console line; they are
			// for the JSON stream.
		default:
			rest = append(rest, pair)
		}
	}

	var b strings.Builder
	b.WriteString(h.paint(ansiDim, formatTimestamp(record.Time)))
	b.WriteString(" ")
	b.WriteString(h.paint(levelColor(record.Level), levelLabel(record.Level)))
	if component != "" {
		b.WriteString(" [")
		b.WriteString(component)
		b.WriteString("]")
	}
	if len(subject) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(subject, " "))
	}
	b.WriteString(" - ")
	b.WriteString(record.Message)
	for _, pair := range rest {
		b.WriteString(" ")
		b.WriteString(h.paint(ansiDim, pair.key+"="+pair.value))
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		mu:     h.mu,
		writer: h.writer,
		level:  h.level,
		color:  h.color,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *consoleHandler) paint(code, text string) string {
	if !h.color || code == "" {
		return text
	}
	return code + text + ansiReset
}

type kv struct {
	key   string
	value string
}

func appendFlattened(pairs []kv, attr slog.Attr, groups []string) []kv {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return pairs
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		nested := append(append([]string(nil), groups...), attr.Key)
		for _, member := range attr.Value.Group() {
			pairs = appendFlattened(pairs, member, nested)
		}
		return pairs
	}
	return append(pairs, kv{key: key, value: fmt.Sprintf("%v", attr.Value.Any())})
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN "
	case level >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	case level >= slog.LevelInfo:
		return ansiCyan
	default:
		return ansiDim
	}
}
