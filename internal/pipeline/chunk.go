package pipeline

import "fmt"

// chunkIter calls fn with contiguous [start, end) ranges of at most
// chunkSize covering [0, length). It stops at the first error from fn.
func chunkIter(length, chunkSize int, fn func(start, end int) error) error {
	if chunkSize < 1 {
		return fmt.Errorf("chunk size may not be less than 1 (got %d)", chunkSize)
	}
	for start := 0; start < length; start += chunkSize {
		end := min(start+chunkSize, length)
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}
