// Package loader holds the error types shared by the document loaders.
package loader

import (
	"errors"
	"fmt"
)

// ErrConfig indicates a loader could not be constructed, for example because
// the content partitioner it depends on is unavailable.
// Check with errors.Is(err, loader.ErrConfig).
var ErrConfig = errors.New("loader configuration error")

// FetchError reports a failure to fetch or parse a single URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching or processing %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
