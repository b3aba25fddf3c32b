// Package css is a style backend that generates class names and CSS rules.
// Rules are buffered until Flush writes them to the configured writer.
package css

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/alexisbeaulieu97/themestyle/internal/interfaces"
	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

const defaultPrefix = "ts"

// Properties rendered without a unit when the value is a number.
var unitless = map[string]bool{
	"flex":        true,
	"flex-grow":   true,
	"flex-shrink": true,
	"font-weight": true,
	"line-height": true,
	"opacity":     true,
	"order":       true,
	"z-index":     true,
}

var invalidClassChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Option configures a Backend.
type Option func(*Backend)

// WithPrefix sets the class-name prefix.
func WithPrefix(prefix string) Option {
	return func(b *Backend) { b.prefix = prefix }
}

// WithLogger attaches a logger for flush records.
func WithLogger(log *logger.Logger) Option {
	return func(b *Backend) { b.logger = log.Named("css") }
}

// Backend buffers generated rules for one output stream.
type Backend struct {
	out    io.Writer
	prefix string
	logger *logger.Logger

	mu      sync.Mutex
	counter int
	buffer  []string
}

// New returns a backend writing flushed rules to out.
func New(out io.Writer, opts ...Option) *Backend {
	b := &Backend{out: out, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Interface exposes the backend with an RTL create that mirrors left/right
// properties, and a Flush.
func (b *Backend) Interface() *style.Interface {
	return &style.Interface{
		Create:    b.CreateLTR,
		Resolve:   b.Resolve,
		CreateLTR: b.CreateLTR,
		CreateRTL: b.CreateRTL,
		Flush: func() {
			if err := b.Flush(); err != nil {
				b.logger.Error(err, "flush css rules")
			}
		},
	}
}

// CreateLTR generates one class per style key.
func (b *Backend) CreateLTR(styles style.StyleMap) (*style.Stylesheet, error) {
	return b.create(styles, style.LTR)
}

// CreateRTL is CreateLTR with directional properties mirrored.
func (b *Backend) CreateRTL(styles style.StyleMap) (*style.Stylesheet, error) {
	return b.create(styles, style.RTL)
}

func (b *Backend) create(styles style.StyleMap, dir style.Direction) (*style.Stylesheet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rules := make(map[string]any, len(styles))
	for _, key := range interfaces.SortedKeys(styles) {
		props, ok := style.AsMap(styles[key])
		if !ok {
			return nil, fmt.Errorf("style %q: expected a property map, got %T", key, styles[key])
		}
		if dir == style.RTL {
			props = interfaces.Mirror(props)
		}

		class := b.className(key, dir)
		b.buffer = append(b.buffer, Rules("."+class, props)...)
		rules[key] = class
	}
	return style.NewStylesheet(rules), nil
}

func (b *Backend) className(key string, dir style.Direction) string {
	b.counter++
	name := invalidClassChars.ReplaceAllString(key, "_")
	class := fmt.Sprintf("%s-%s-%d", b.prefix, name, b.counter)
	if dir == style.RTL {
		class += "-rtl"
	}
	return class
}

// Resolve joins class names into "className" and merges inline maps into
// "style", later refs winning. Nested lists are flattened first.
func (b *Backend) Resolve(refs []any) style.RenderableProps {
	var classes []string
	var inline map[string]any

	for _, ref := range style.Flatten(refs) {
		switch v := ref.(type) {
		case string:
			if v != "" {
				classes = append(classes, v)
			}
		default:
			props, ok := style.AsMap(v)
			if !ok {
				continue
			}
			if inline == nil {
				inline = map[string]any{}
			}
			for key, value := range props {
				inline[key] = value
			}
		}
	}

	out := style.RenderableProps{}
	if len(classes) > 0 {
		out["className"] = strings.Join(classes, " ")
	}
	if inline != nil {
		out["style"] = inline
	}
	return out
}

// Pending returns the buffered rules not yet flushed.
func (b *Backend) Pending() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.buffer...)
}

// Flush writes buffered rules, one per line, and clears the buffer.
func (b *Backend) Flush() error {
	b.mu.Lock()
	pending := b.buffer
	b.buffer = nil
	b.mu.Unlock()

	if len(pending) == 0 || b.out == nil {
		return nil
	}
	b.logger.WithField("rules", len(pending)).Debug("flushing css rules")
	_, err := io.WriteString(b.out, strings.Join(pending, "\n")+"\n")
	return err
}

// Rules renders props for selector. Keys starting with ":" or "::" become
// pseudo-selector rules and keys starting with "@" wrap a nested rule.
func Rules(selector string, props map[string]any) []string {
	var decls []string
	var nested []string

	for _, key := range interfaces.SortedKeys(props) {
		value := props[key]
		if sub, ok := style.AsMap(value); ok {
			switch {
			case strings.HasPrefix(key, "@"):
				for _, rule := range Rules(selector, sub) {
					nested = append(nested, fmt.Sprintf("%s{%s}", key, rule))
				}
			default:
				nested = append(nested, Rules(selector+key, sub)...)
			}
			continue
		}
		name := Kebab(key)
		decls = append(decls, fmt.Sprintf("%s:%s", name, formatValue(name, value)))
	}

	var out []string
	if len(decls) > 0 {
		out = append(out, fmt.Sprintf("%s{%s}", selector, strings.Join(decls, ";")))
	}
	return append(out, nested...)
}

// Kebab converts a camelCase property name to kebab-case.
func Kebab(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func formatValue(property string, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return fmt.Sprint(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(property, item))
		}
		return strings.Join(parts, ", ")
	}
	if n, err := interfaces.ToInt(value); err == nil {
		if n == 0 || unitless[property] {
			return fmt.Sprint(value)
		}
		return fmt.Sprintf("%vpx", value)
	}
	return fmt.Sprint(value)
}
