package gotdiff

import "encoding/json"

// calculateCached serves hunks from the result cache when possible. Cache
// failures degrade to a fresh computation.
func (d *Differ) calculateCached(oldHTML, newHTML string) ([]Diff, error) {
	key := CacheKey(HashContent(oldHTML), HashContent(newHTML), d.fingerprint())

	if cached, ok := d.cache.Get(key); ok {
		diffs, err := decodeDiffs(cached)
		if err == nil {
			d.logger.Debug("diff cache hit", "key", key, "hunks", len(diffs))
			// Identifiers must be unique per computation.
			for i := range diffs {
				diffs[i].DiffID = d.newID()
			}
			return diffs, nil
		}
		d.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
	}

	d.logger.Debug("diff cache miss", "key", key)
	diffs := d.calculate(oldHTML, newHTML)

	encoded, err := json.Marshal(diffs)
	if err != nil {
		d.logger.Warn("encoding diff for cache", "key", key, "error", &CacheError{Message: "encode failed", Cause: err})
		return diffs, nil
	}
	if err := d.cache.Set(key, string(encoded)); err != nil {
		d.logger.Warn("storing diff in cache", "key", key, "error", &CacheError{Message: "set failed", Cause: err})
	}

	return diffs, nil
}

func decodeDiffs(s string) ([]Diff, error) {
	diffs := []Diff{}
	if err := json.Unmarshal([]byte(s), &diffs); err != nil {
		return nil, &CacheError{Message: "decode failed", Cause: err}
	}
	return diffs, nil
}
