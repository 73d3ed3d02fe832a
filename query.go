package pool

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression, e.g. `$.purchases[*].title`, over
// the JSON form of doc.
func Query(doc *Document, path string) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	result, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return result, nil
}
