package accessor

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uakit/pkg/logger"
)

// Accessor memoizes a value derived from the ambient user agent string.
//
// Each Accessor belongs to a single component instance and caches exactly one
// (input, output) pair. It is not safe for concurrent use.
type Accessor[T any] struct {
	provider Provider
	derive   func(raw string) T
	logger   *slog.Logger
	id       uuid.UUID

	cached bool
	input  string
	value  T
}

// Option configures an Accessor.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

// WithLogger sets the logger used for recomputation and recovery records.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName sets the component name attached to log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// New creates an accessor that recomputes derive(raw) whenever the string
// reported by p differs from the one seen on the previous Get.
// A nil provider reports the empty string; a nil derive yields the zero T.
func New[T any](p Provider, derive func(raw string) T, opts ...Option) *Accessor[T] {
	o := options{logger: slog.Default(), name: "useragent"}
	for _, opt := range opts {
		opt(&o)
	}

	if p == nil {
		p = Static("")
	}
	if derive == nil {
		derive = func(string) T {
			var zero T
			return zero
		}
	}

	id := uuid.New()
	return &Accessor[T]{
		provider: p,
		derive:   derive,
		id:       id,
		logger: o.logger.With(
			logger.Component(o.name),
			logger.InstanceID(id.String()),
		),
	}
}

// NewRaw creates the pass-through variant: Get returns the ambient string unchanged.
func NewRaw(p Provider, opts ...Option) *Accessor[string] {
	return New(p, func(raw string) string { return raw }, opts...)
}

// Get reads the ambient string and returns the derived value, recomputing it
// only when the string changed since the previous call. Repeated calls with an
// unchanged string return the identical cached value.
func (a *Accessor[T]) Get() T {
	raw := a.provider.UserAgent()
	if a.cached && raw == a.input {
		return a.value
	}

	a.value = a.derive(raw)
	a.input = raw
	a.cached = true

	a.logger.Debug("user agent derived", logger.UserAgent(raw))
	return a.value
}

// Reset discards the cached value, returning the accessor to its initial
// state. Call it when the owning component is torn down.
func (a *Accessor[T]) Reset() {
	var zero T
	a.cached = false
	a.input = ""
	a.value = zero
}

// ID returns the identifier attached to this instance's log records.
func (a *Accessor[T]) ID() uuid.UUID { return a.id }
