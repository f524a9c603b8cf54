package search

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// FileResult describes one file or folder returned by the backend.
// Unknown fields, and known fields whose values do not fit, are kept in
// Metadata.
type FileResult struct {
	Name     string
	Path     string
	Type     string
	Size     int64
	Modified string
	Score    float64
	Metadata map[string]any
}

// IsDir reports whether the result is a folder.
func (r FileResult) IsDir() bool {
	switch r.Type {
	case "folder", "directory", "dir":
		return true
	}
	return false
}

// DisplayName returns the name, falling back to the path.
func (r FileResult) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Path
}

// decodeResults converts the raw JSON result objects into FileResults.
// Only a result that is not an object is an error.
func decodeResults(raw []any) ([]FileResult, error) {
	results := make([]FileResult, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("result %d is %T, not an object", i, item)
		}
		results = append(results, decodeResult(obj))
	}
	return results, nil
}

// decodeResult fills the known fields with weak typing. A value that does
// not fit its field is kept untouched in Metadata instead.
func decodeResult(obj map[string]any) FileResult {
	var r FileResult
	known := map[string]any{
		"name":     &r.Name,
		"path":     &r.Path,
		"type":     &r.Type,
		"size":     &r.Size,
		"modified": &r.Modified,
		"score":    &r.Score,
	}
	for key, value := range obj {
		target, ok := known[key]
		if ok && value == nil {
			continue
		}
		if ok && mapstructure.WeakDecode(value, target) == nil {
			continue
		}
		if r.Metadata == nil {
			r.Metadata = make(map[string]any)
		}
		r.Metadata[key] = value
	}
	return r
}
