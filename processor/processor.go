// Package processor extracts translatable text from rich content such as
// announcement HTML.
package processor

import "github.com/TanglawLabs/salin"

// ContentProcessor is the interface for content processing.
// This is an alias to the main package interface for convenience.
type ContentProcessor = salin.ContentProcessor
