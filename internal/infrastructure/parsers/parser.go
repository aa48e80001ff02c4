// Package parsers reads place lists for bulk import.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawPlace is a place read from an import file before validation.
type RawPlace struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	PlaceType string   `json:"place_type,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	LineNum   int      `json:"-"` // set by parser
}

// Parser reads places from an import format.
type Parser interface {
	Parse(r io.Reader) ([]RawPlace, error)
}

// ForFormat returns the parser for "json" or "csv", or nil.
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the parser matching the file extension, or nil.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}
