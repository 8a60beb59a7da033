package accessor

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/uakit/pkg/config"
	"github.com/dmitrymomot/uakit/pkg/decomposer"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// NewParsed creates the structured variant. Get returns a *useragent.Info that
// stays the same pointer until the ambient string changes.
//
// Errors and panics from d never reach the caller: they are logged and
// replaced with the all-absent record. A nil d always yields that record.
func NewParsed(p Provider, d useragent.Decomposer, opts ...Option) *Accessor[*useragent.Info] {
	a := New[*useragent.Info](p, nil, opts...)
	a.derive = decompose(d, a.logger.With(logger.Decomposer(fmt.Sprintf("%T", d))))
	return a
}

// NewParsedFromConfig builds the structured variant with the decomposer and
// logger described by cfg. Options are applied after the configured ones.
func NewParsedFromConfig(cfg config.Config, p Provider, opts ...Option) (*Accessor[*useragent.Info], error) {
	d, err := decomposer.New(cfg.Decomposer)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithLogger(cfg.Logger())}, opts...)
	return NewParsed(p, d, opts...), nil
}

func decompose(d useragent.Decomposer, log *slog.Logger) func(raw string) *useragent.Info {
	return func(raw string) (info *useragent.Info) {
		defer func() {
			if r := recover(); r != nil {
				log.Warn("user agent decomposition panicked",
					logger.Panic(r),
					logger.UserAgent(raw),
				)
				info = useragent.Empty(raw)
			}
		}()

		if d == nil {
			return useragent.Empty(raw)
		}

		res, err := d.Decompose(raw)
		if err != nil {
			log.Debug("user agent not decomposed",
				logger.Error(err),
				logger.UserAgent(raw),
			)
			return useragent.Empty(raw)
		}

		res.FullString = raw
		log.Debug("user agent decomposed",
			logger.UserAgent(raw),
			logger.Group("agent",
				slog.String("browser", res.Browser.Name),
				slog.String("os", res.OS.Name),
				slog.String("device", res.Device.Type),
			),
		)
		return &res
	}
}
