package log

import (
	"context"
	"errors"
	"log/slog"
)

// TeeHandler duplicates every record to a primary and a secondary
// slog.Handler. The primary is the console; the secondary is typically a
// run log file that should carry a copy of everything shown to the user.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because it integrates with standard slog APIs and composes with any
// underlying handler. Enabled() consults only the primary handler, so
// the file never records more than the console verbosity allows.
type TeeHandler struct {
	// primary receives records and decides the enabled level.
	primary slog.Handler

	// secondary receives a copy of every record the primary accepts.
	secondary slog.Handler
}

// NewTeeHandler creates a TeeHandler duplicating records from primary to
// secondary. A nil secondary makes the tee a transparent wrapper.
func NewTeeHandler(primary, secondary slog.Handler) *TeeHandler {
	return &TeeHandler{primary: primary, secondary: secondary}
}

// Enabled reports whether the primary handler handles records at the
// given level.
func (h *TeeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.primary.Enabled(ctx, level)
}

// Handle passes the record to both handlers. The record reaches the
// secondary even if the primary fails; errors from both are joined.
func (h *TeeHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.primary.Handle(ctx, r.Clone())
	if h.secondary != nil {
		err = errors.Join(err, h.secondary.Handle(ctx, r.Clone()))
	}
	return err
}

// WithAttrs returns a new TeeHandler whose handlers both carry the
// given attributes.
func (h *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var secondary slog.Handler
	if h.secondary != nil {
		secondary = h.secondary.WithAttrs(attrs)
	}
	return &TeeHandler{
		primary:   h.primary.WithAttrs(attrs),
		secondary: secondary,
	}
}

// WithGroup returns a new TeeHandler whose handlers both open the
// given group.
func (h *TeeHandler) WithGroup(name string) slog.Handler {
	var secondary slog.Handler
	if h.secondary != nil {
		secondary = h.secondary.WithGroup(name)
	}
	return &TeeHandler{
		primary:   h.primary.WithGroup(name),
		secondary: secondary,
	}
}
