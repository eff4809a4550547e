package options

import (
	"github.com/bgrewell/attr-kit/pkg/catalog"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/go-logr/logr"
)

// Options represents the options for building an attribute rule.
type Options struct {
	Platform       consts.Platform
	Catalog        catalog.Catalog
	ValidateTables bool
	Logger         logr.Logger
}

// Option represents a function that modifies the Options
type Option func(*Options)

// WithPlatform selects which built-in flag catalog the rule is built from.
func WithPlatform(p consts.Platform) Option {
	return func(o *Options) {
		o.Platform = p
	}
}

// WithCatalog supplies a custom flag catalog instead of a built-in one.
// The catalog is used as given; order is preserved.
func WithCatalog(c catalog.Catalog) Option {
	return func(o *Options) {
		o.Catalog = c
	}
}

// WithValidateTables sets whether the catalog is checked for zero, duplicate
// or overlapping masks before the rule is built.
func WithValidateTables(enabled bool) Option {
	return func(o *Options) {
		o.ValidateTables = enabled
	}
}

// WithLogger sets the logger used for debug and trace output.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
