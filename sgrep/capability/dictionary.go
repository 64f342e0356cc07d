// Package capability resolves opaque numeric capability identifiers to
// human names and base categories, and classifies entities by the
// capabilities observed touching them.
//
// Both dictionaries are built once, from external JSON documents, and are
// read-only afterward: callers pass a *Dictionary and *StructureSet into
// the parser constructor rather than reaching for package-level state.
package capability

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Entry is one archetype known to a capability dictionary.
type Entry struct {
	ID       uint64 `json:"id"`
	Hash     uint32 `json:"hash"`
	Name     string `json:"name"`
	BaseType string `json:"base_type"`
}

// Dictionary maps archetype ids (and their secondary hash) to names and
// base categories.
type Dictionary struct {
	byID   map[uint64]Entry
	byHash map[uint32]Entry
}

// LoadDictionary parses the `archetypes` JSON document: a map from
// decimal-string id to a two-element array `[hash, info]`, where info
// supplies `id` (the human name) and `__base_type` (the category).
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var doc struct {
		Archetypes map[string][]json.RawMessage `json:"archetypes"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("capability: decode archetypes: %w", err)
	}

	d := &Dictionary{
		byID:   make(map[uint64]Entry, len(doc.Archetypes)),
		byHash: make(map[uint32]Entry, len(doc.Archetypes)),
	}

	for key, pair := range doc.Archetypes {
		if len(pair) != 2 {
			continue
		}
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		var hash uint32
		if err := json.Unmarshal(pair[0], &hash); err != nil {
			continue
		}
		var info struct {
			Name     string `json:"id"`
			BaseType string `json:"__base_type"`
		}
		if err := json.Unmarshal(pair[1], &info); err != nil {
			continue
		}

		entry := Entry{ID: id, Hash: hash, Name: info.Name, BaseType: info.BaseType}
		d.byID[id] = entry
		d.byHash[hash] = entry
	}

	return d, nil
}

// Lookup resolves an archetype by its primary numeric id.
func (d *Dictionary) Lookup(id uint64) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.byID[id]
	return e, ok
}

// LookupHash resolves an archetype by its secondary hash.
func (d *Dictionary) LookupHash(hash uint32) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.byHash[hash]
	return e, ok
}

// Name resolves id to its human name, falling back to the stringified id
// when the dictionary is nil or the id is unknown.
func (d *Dictionary) Name(id uint64) string {
	if e, ok := d.Lookup(id); ok && e.Name != "" {
		return e.Name
	}
	return strconv.FormatUint(id, 10)
}

// NameAndType resolves id to its (name, base_type) pair, falling back to
// the stringified id with an empty base type.
func (d *Dictionary) NameAndType(id uint64) (name, baseType string) {
	if e, ok := d.Lookup(id); ok {
		n := e.Name
		if n == "" {
			n = strconv.FormatUint(id, 10)
		}
		return n, e.BaseType
	}
	return strconv.FormatUint(id, 10), ""
}
