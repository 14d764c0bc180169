package blacklist

import (
	"context"
	"log/slog"

	"github.com/nao1215/passcheck/internal/model"
)

// Checker turns Store lookups into verdicts.
type Checker struct {
	enabled bool
	store   Store
	logger  *slog.Logger
}

// CheckerOption is a functional option for Checker.
type CheckerOption func(*Checker)

// WithLogger sets the logger used to report unavailable stores.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a Checker. When enabled is false the store is never used.
func NewChecker(enabled bool, store Store, opts ...CheckerOption) *Checker {
	c := &Checker{
		enabled: enabled,
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Enabled reports whether the checker consults its store.
func (c *Checker) Enabled() bool {
	return c != nil && c.enabled
}

// Check returns the verdict for password. It never fails: any store error
// becomes VerdictUnavailable.
func (c *Checker) Check(ctx context.Context, password string) model.Verdict {
	if !c.Enabled() {
		return model.VerdictDisabled
	}
	if c.store == nil {
		c.logger.Warn("blacklist check enabled without a store")
		return model.VerdictUnavailable
	}

	found, err := c.store.Contains(ctx, password)
	if err != nil {
		c.logger.Warn("blacklist unavailable", "error", err)
		return model.VerdictUnavailable
	}
	if found {
		return model.VerdictBlacklisted
	}
	return model.VerdictNotBlacklisted
}

// Check is a one-shot lookup of password in the list file at path.
func Check(ctx context.Context, password string, enabled bool, path string) model.Verdict {
	return NewChecker(enabled, NewFileStore(path)).Check(ctx, password)
}
