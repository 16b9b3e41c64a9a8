package cleaner

import (
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a cleaner that applies cleaners in the order given.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.NewReadability(nil),
//	    cleaner.NewMarkdown(),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{cleaners: cleaners}
}

// Clean applies all cleaners in sequence, stopping at the first error.
func (c *ChainCleaner) Clean(content string) (string, error) {
	var err error
	for _, cl := range c.cleaners {
		content, err = cl.Clean(content)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// Format is the format of the last cleaner in the chain.
func (c *ChainCleaner) Format() Format {
	if len(c.cleaners) == 0 {
		return FormatHTML
	}
	return OutputFormat(c.cleaners[len(c.cleaners)-1])
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cl := range c.cleaners {
		names[i] = cl.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
