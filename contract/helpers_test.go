package contract

import (
	"fmt"
)

// panicked runs f and returns the error it panicked with, or nil if it didn't panic.
func panicked(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("non-error panic: %v", r)
			}
		}
	}()
	f()
	return nil
}
