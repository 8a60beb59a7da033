// Package decomposer resolves a user agent decomposition engine by name.
package decomposer

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/useragent"
	"github.com/dmitrymomot/uakit/pkg/useragent/mssola"
	"github.com/dmitrymomot/uakit/pkg/useragent/surfer"
)

// Supported engine names.
const (
	Keyword  = "keyword"
	UASurfer = "uasurfer"
	Mssola   = "mssola"
)

// New returns the decomposer registered under name.
// An empty name selects the built-in keyword parser.
func New(name string) (useragent.Decomposer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Keyword:
		return useragent.Parser{}, nil
	case UASurfer:
		return surfer.New(), nil
	case Mssola:
		return mssola.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDecomposer, name)
}

// Names lists the supported engine names, default first.
func Names() []string {
	return []string{Keyword, UASurfer, Mssola}
}
