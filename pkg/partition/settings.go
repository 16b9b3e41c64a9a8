package partition

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// ErrInvalidOptions is returned when passthrough options cannot be applied.
var ErrInvalidOptions = errors.New("invalid partition options")

// Settings are the typed form of the Options the built-in partitioner accepts.
type Settings struct {
	// Cleaner pre-processes fetched HTML: none, readability, trafilatura or markdown.
	Cleaner string `mapstructure:"cleaner" validate:"omitempty,oneof=none readability trafilatura markdown"`
	// SkipHeadersFooters drops <header>, <footer> and <nav> before partitioning.
	SkipHeadersFooters bool `mapstructure:"skip_headers_footers"`
	// UserAgent overrides the fetcher's user agent.
	UserAgent string `mapstructure:"user_agent"`
	// Timeout overrides the fetcher's request timeout.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// WaitForSelector is honoured by dynamic fetchers only.
	WaitForSelector string `mapstructure:"wait_for_selector"`
}

var validate = validator.New()

// DecodeSettings converts passthrough options into Settings. Unknown keys
// and invalid values are rejected.
func DecodeSettings(opts Options) (Settings, error) {
	var s Settings
	if len(opts) == 0 {
		return s, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return s, err
	}
	if err := dec.Decode(map[string]any(opts)); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := validate.Struct(s); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return s, nil
}
