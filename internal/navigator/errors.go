package navigator

import "fmt"

// NotFoundError reports that an indexed element lookup matched nothing.
type NotFoundError struct {
	Selector string
	Index    int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("navigator: no element at index %d for selector %q", e.Index, e.Selector)
}
