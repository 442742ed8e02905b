// Package logging builds the process slog logger.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
)

// New returns a JSON logger in production and a text logger elsewhere. Records
// logged with a request context carry its request_id.
func New(w io.Writer, env string, level slog.Level, service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if env == "production" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(&contextHandler{Handler: h}).With(slog.String("service", service))
}

type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := common.RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
