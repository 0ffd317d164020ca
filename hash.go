package gotdiff

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// HashContent computes a 128-bit xxh3 hash of content as 32 hex characters.
// Content is hashed verbatim; whitespace changes alter line numbers and must
// alter the hash.
func HashContent(content string) string {
	h := xxh3.HashString128(content)
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}

// CacheKey generates a cache key from the hashes of both sides and a
// settings fingerprint.
func CacheKey(oldHash, newHash, fingerprint string) string {
	return strings.Join([]string{oldHash, newHash, fingerprint}, ":")
}

// fingerprint encodes every setting that influences hunk output, including
// which diff primitive produced it.
func (d *Differ) fingerprint() string {
	return fmt.Sprintf("b%d.l%d.e%d.p%d.%s", d.window.budget, d.window.lines, d.window.extend, d.proximityLines, differKey(d.textDiffer))
}

func differKey(td TextDiffer) string {
	if c, ok := td.(*CharDiffer); ok {
		return "t" + c.Timeout.String()
	}
	return fmt.Sprintf("%T", td)
}
