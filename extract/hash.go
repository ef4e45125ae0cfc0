package extract

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// contentHash computes a hash of the extracted content using xxhash.
// Callers use it to detect whether a tab's content changed between
// extractions without diffing the content itself.
func contentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
