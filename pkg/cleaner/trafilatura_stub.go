//go:build !trafilatura

package cleaner

import "fmt"

// TrafilaturaConfig configures the Trafilatura cleaner.
type TrafilaturaConfig struct {
	IncludeComments bool
	ExcludeTables   bool
	DisableFallback bool
}

// TrafilaturaCleaner is a stand-in used when trafilatura is not compiled in.
// Build with -tags trafilatura to enable the real implementation.
type TrafilaturaCleaner struct{}

// NewTrafilatura returns the stand-in cleaner.
func NewTrafilatura(_ *TrafilaturaConfig) *TrafilaturaCleaner {
	return &TrafilaturaCleaner{}
}

// Clean always fails with ErrUnavailable.
func (c *TrafilaturaCleaner) Clean(_ string) (string, error) {
	return "", fmt.Errorf("%w: build with -tags trafilatura", ErrUnavailable)
}

// Name returns the cleaner type.
func (c *TrafilaturaCleaner) Name() string {
	return NameTrafilatura
}

// IsAvailable returns false when trafilatura is not compiled in.
func (c *TrafilaturaCleaner) IsAvailable() bool {
	return false
}
