package input

import (
	"sync"

	"i18nls/internal/ikey"
)

// Catalog is a mutable input: one loaded translation file, already flattened
// to dotted keys, with its raw JSON text and per-key/per-value source ranges
// kept alongside for position queries.
type Catalog struct {
	mu          sync.RWMutex
	language    string
	filePath    string
	keys        map[string]string
	jsonText    string
	keyRanges   map[string]ikey.Range
	valueRanges map[string]ikey.Range
	revision    uint64
}

// NewCatalog constructs a Catalog at revision 1.
func NewCatalog(language, filePath string, keys map[string]string, jsonText string, keyRanges, valueRanges map[string]ikey.Range) *Catalog {
	return &Catalog{
		language:    language,
		filePath:    filePath,
		keys:        keys,
		jsonText:    jsonText,
		keyRanges:   keyRanges,
		valueRanges: valueRanges,
		revision:    1,
	}
}

func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

func (c *Catalog) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Keys returns the flattened dotted-key translation map. Callers must treat
// the returned map as read-only; Reload swaps it wholesale rather than
// mutating in place.
func (c *Catalog) Keys() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys
}

func (c *Catalog) JSONText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jsonText
}

func (c *Catalog) KeyRanges() map[string]ikey.Range {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyRanges
}

func (c *Catalog) ValueRanges() map[string]ikey.Range {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valueRanges
}

func (c *Catalog) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

// Reload replaces every derived field atomically and bumps the revision,
// used when the backing file changes on disk.
func (c *Catalog) Reload(keys map[string]string, jsonText string, keyRanges, valueRanges map[string]ikey.Range) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = keys
	c.jsonText = jsonText
	c.keyRanges = keyRanges
	c.valueRanges = valueRanges
	c.revision++
}
