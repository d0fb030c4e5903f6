package overlay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Band is a coarse energy classification for an overlay or a song.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
	// BandAny marks overlays that suit every energy band.
	BandAny Band = "any"
)

// valid reports whether b is one of the four catalog bands.
func (b Band) valid() bool {
	switch b {
	case BandLow, BandMid, BandHigh, BandAny:
		return true
	}
	return false
}

// Entry describes one overlay effect in the catalog.
type Entry struct {
	Name         string   `json:"name"`
	Layer        int      `json:"layer"`
	Weight       int      `json:"weight"`
	EnergyBand   Band     `json:"energyBand"`
	Tags         []string `json:"tags,omitempty"`
	AlwaysActive bool     `json:"-"`
}

// Catalog holds the validated overlay table in its original order.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New validates entries and the always-active name list and builds a catalog.
// Entry order is preserved; it is the tie-break order for scoring.
func New(entries []Entry, alwaysActive []string) (*Catalog, error) {
	index := make(map[string]int, len(entries))
	table := make([]Entry, len(entries))
	copy(table, entries)

	for i, entry := range table {
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: name is empty", i)
		}
		if _, dup := index[entry.Name]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate name", entry.Name)
		}
		if entry.Layer < 1 || entry.Layer > 10 {
			return nil, fmt.Errorf("catalog entry %q: layer %d out of range 1-10", entry.Name, entry.Layer)
		}
		if entry.Weight < 1 || entry.Weight > 3 {
			return nil, fmt.Errorf("catalog entry %q: weight %d out of range 1-3", entry.Name, entry.Weight)
		}
		if !entry.EnergyBand.valid() {
			return nil, fmt.Errorf("catalog entry %q: unknown energy band %q", entry.Name, entry.EnergyBand)
		}
		index[entry.Name] = i
	}

	for _, name := range alwaysActive {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("always-active overlay %q not in catalog", name)
		}
		table[i].AlwaysActive = true
	}

	return &Catalog{entries: table, index: index}, nil
}

// catalogFile is the on-disk catalog shape: the entry array plus a separate
// always-active name list.
type catalogFile struct {
	Overlays     []Entry  `json:"overlays"`
	AlwaysActive []string `json:"alwaysActive,omitempty"`
}

// LoadFile reads and validates a catalog JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Overlays) == 0 {
		return nil, fmt.Errorf("catalog %s contains no overlays", path)
	}
	cat, err := New(file.Overlays, file.AlwaysActive)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the catalog in original order. Callers must not mutate
// the returned slice.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Lookup finds an entry by name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// AlwaysActive returns the always-active entries in catalog order.
func (c *Catalog) AlwaysActive() []Entry {
	var out []Entry
	for _, entry := range c.entries {
		if entry.AlwaysActive {
			out = append(out, entry)
		}
	}
	return out
}

// LayerEntries returns the entries for one layer in catalog order.
func (c *Catalog) LayerEntries(layer int) []Entry {
	var out []Entry
	for _, entry := range c.entries {
		if entry.Layer == layer {
			out = append(out, entry)
		}
	}
	return out
}
