// Package source supplies autocomplete options, either from a fixed list or
// by running an external command for each query.
package source

import (
	"context"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
)

// Provider fetches the options for a query. Implementations must honour ctx
// cancellation; a superseded query's context is cancelled by the caller.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, query string) ([]combobox.Option, error)
}

// Static serves a fixed option list. Filtering is left to the engine, so
// Fetch ignores the query.
type Static struct {
	options []combobox.Option
}

// NewStatic wraps options in a Provider.
func NewStatic(options []combobox.Option) *Static {
	return &Static{options: options}
}

// Name identifies the provider in logs and errors.
func (s *Static) Name() string {
	return "static"
}

// Fetch returns the configured options.
func (s *Static) Fetch(ctx context.Context, _ string) ([]combobox.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.options, nil
}

// Remote reports whether p computes results per query, in which case the
// engine should not filter them again.
func Remote(p Provider) bool {
	_, static := p.(*Static)
	return p != nil && !static
}
