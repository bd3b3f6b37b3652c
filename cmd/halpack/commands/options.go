package commands

import (
	"strconv"
	"strings"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseOptions parses name=value override pairs into a map. Values must parse
// as booleans.
func parseOptions(pairs []string) (map[string]bool, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, zerr.With(domain.ErrInvalidOptionValue, "option", pair)
		}

		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidOptionValue, "option", pair)
		}
		overrides[name] = value
	}
	return overrides, nil
}
