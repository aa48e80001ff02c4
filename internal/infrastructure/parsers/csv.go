package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVParser parses places from CSV with a header row.
type CSVParser struct{}

// Parse reads CSV places. Required columns: name, address. Optional: id,
// place_type, lat, lng.
func (p *CSVParser) Parse(r io.Reader) ([]RawPlace, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"name", "address"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawPlace, error) {
	var places []RawPlace
	lineNum := 1 // header

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		place, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}

	return places, nil
}

// parseRecord converts a CSV record to a RawPlace.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawPlace, error) {
	place := RawPlace{
		ID:        getColumn(record, colIndex, "id"),
		Name:      getColumn(record, colIndex, "name"),
		Address:   getColumn(record, colIndex, "address"),
		PlaceType: getColumn(record, colIndex, "place_type"),
		LineNum:   lineNum,
	}

	var err error
	if place.Lat, err = parseCoord(getColumn(record, colIndex, "lat")); err != nil {
		return RawPlace{}, fmt.Errorf("line %d: invalid lat: %w", lineNum, err)
	}
	if place.Lng, err = parseCoord(getColumn(record, colIndex, "lng")); err != nil {
		return RawPlace{}, fmt.Errorf("line %d: invalid lng: %w", lineNum, err)
	}

	return place, nil
}

func parseCoord(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// getColumn safely retrieves a trimmed column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
