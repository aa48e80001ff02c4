package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses a JSON array of places.
type JSONParser struct{}

// Parse reads a JSON array of places.
func (p *JSONParser) Parse(r io.Reader) ([]RawPlace, error) {
	var places []RawPlace

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&places); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Line numbers are 1-based array positions.
	for i := range places {
		places[i].LineNum = i + 1
	}

	return places, nil
}
