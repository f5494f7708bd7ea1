package logging

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

// DefaultRedactOptions hides the API token wherever it could end up in a
// record: config dumps, header values and ad-hoc attributes.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("Token"),
		masq.WithFieldName("token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("bearer"),
		masq.WithRegex(bearerPattern),
	}
}

// RedactHandler applies masq to every attribute before handing the record
// to the wrapped handler. charmbracelet/log has no ReplaceAttr hook, so the
// redaction lives in front of it.
type RedactHandler struct {
	next    slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

func NewRedactHandler(next slog.Handler, opts ...masq.Option) *RedactHandler {
	return &RedactHandler{
		next:    next,
		replace: masq.New(append(DefaultRedactOptions(), opts...)...),
	}
}

func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.replace(h.groups, a))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replace(h.groups, a)
	}
	return &RedactHandler{next: h.next.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	groups := append(append([]string{}, h.groups...), name)
	return &RedactHandler{next: h.next.WithGroup(name), replace: h.replace, groups: groups}
}
