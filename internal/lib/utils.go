package lib

import "fmt"

// Err wraps err as "op: err" so the call path stays visible in logs.
func Err(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
