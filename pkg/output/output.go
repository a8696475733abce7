// Package output writes query results to the result stream.
package output

import (
	"bufio"
	"fmt"
	"io"
)

// WriteCookies writes each cookie identifier on its own line, in the order
// given. Nothing is written for an empty slice.
func WriteCookies(w io.Writer, cookies []string) error {
	if len(cookies) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	for _, cookie := range cookies {
		if _, err := fmt.Fprintln(bw, cookie); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
