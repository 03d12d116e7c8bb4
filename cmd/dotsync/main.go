package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/style"
)

// formatError renders a failed run for stderr. Hook failures carry the
// command's captured output in their details; surface it under the
// error line so the user sees what the hook printed.
func formatError(err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if details := errors.GetErrorDetails(err); details != nil {
		if out, ok := details["output"].(string); ok && strings.TrimSpace(out) != "" {
			msg += "\n" + strings.TrimRight(out, "\n")
		}
	}
	return msg
}

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(formatError(err)))
		os.Exit(1)
	}
}
