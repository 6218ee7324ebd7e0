// ABOUTME: JSON document helpers on top of the file store
// ABOUTME: Pretty-prints on save and distinguishes missing from malformed on load
package store

import (
	"encoding/json"
	"fmt"
)

// saveJSON serializes v as indented JSON and overwrites the named document.
func (f *Files) saveJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return f.Write(f.Path(name), data)
}

// loadJSON decodes the named document into dest. It reports found=false and
// leaves dest untouched when the document does not exist.
func (f *Files) loadJSON(name string, dest any) (bool, error) {
	data, ok, err := f.Read(f.Path(name))
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("%w: failed to parse %s: %w", ErrParse, name, err)
	}
	return true, nil
}
