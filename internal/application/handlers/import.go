package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/services"
	"github.com/ersonp/logitrust/internal/infrastructure/parsers"
)

// ImportHandler handles bulk place imports from files.
type ImportHandler struct {
	places *PlaceHandler
}

// NewImportHandler creates a new import handler.
func NewImportHandler(places *PlaceHandler) *ImportHandler {
	return &ImportHandler{places: places}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "csv", or "auto"
	DryRun bool   // Validate without saving
}

// ImportError is a row that could not be imported.
type ImportError struct {
	Line    int    `json:"line"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// Handle imports places from a file.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file %s: %w", filePath, ErrInvalidInput)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	rows, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return h.Import(ctx, rows, opts.DryRun)
}

// Import adds each parsed place. Rows that fail validation or collide with
// an existing id are skipped and reported; storage failures abort.
func (h *ImportHandler) Import(ctx context.Context, rows []parsers.RawPlace, dryRun bool) (*ImportResult, error) {
	result := &ImportResult{}

	for _, row := range rows {
		in := AddPlaceInput{
			ID:      row.ID,
			Name:    row.Name,
			Address: row.Address,
			Type:    row.PlaceType,
			Lat:     row.Lat,
			Lng:     row.Lng,
		}

		if dryRun {
			if msg := validateImportRow(in); msg != "" {
				result.skip(row, msg)
				continue
			}
			result.Imported++
			continue
		}

		if _, err := h.places.Add(ctx, in); err != nil {
			if errors.Is(err, services.ErrInvalidPlace) {
				result.skip(row, err.Error())
				continue
			}
			return nil, fmt.Errorf("line %d: %w", row.LineNum, err)
		}
		result.Imported++
	}

	return result, nil
}

func (r *ImportResult) skip(row parsers.RawPlace, msg string) {
	r.Skipped++
	r.Errors = append(r.Errors, ImportError{Line: row.LineNum, Name: row.Name, Message: msg})
}

func validateImportRow(in AddPlaceInput) string {
	if strings.TrimSpace(in.Name) == "" {
		return "name is required"
	}
	if in.Type == "" {
		return ""
	}
	if t := entities.PlaceType(strings.ToUpper(strings.TrimSpace(in.Type))); !t.IsValid() {
		return fmt.Sprintf("place type %q is not supported", in.Type)
	}
	return ""
}
