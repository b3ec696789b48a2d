package main

import (
	"io"
	"log"
)

// newLogger builds the small ambient logger used only for non-fatal builder
// warnings (the TM "B != '_'" notice), never for the per-step trace, which
// is data output rather than logging (SPEC_FULL.md §6.2). REPL session
// notices are written to the session's own output, not to this logger.
func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[automatasim] ", 0)
}
