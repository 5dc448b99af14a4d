package contract

import (
	"strings"
)

// collector gathers errors so they can be reported together.
// It's an error itself, and [errors.Is] and [errors.As] see every collected error.
//
// Note that a collector is not concurrency safe.
type collector struct {
	errs    []error
	joinStr string
}

func collectErrors(joinString ...string) *collector {
	joinStr := "; "
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &collector{
		joinStr: joinStr,
	}
}

// add adds a potentially nil error, nil errors are dropped.
func (c *collector) add(err error) *collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

func (c *collector) len() int {
	return len(c.errs)
}

// result returns nil if nothing was collected, since an empty collector is still a non-nil error.
func (c *collector) result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

func (c *collector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (c *collector) Unwrap() []error {
	return c.errs
}
