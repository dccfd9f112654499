package catalogapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ersonp/dex/internal/domain/entities"
)

// wireRecord mirrors the published schema. Pointers tell a missing (or null)
// field or list element apart from a zero value.
type wireRecord struct {
	ID          *int            `json:"id"`
	Name        *string         `json:"name"`
	Type        *[]*string      `json:"type"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	Evolutions  *wireEvolutions `json:"evolutions"`
}

type wireEvolutions struct {
	Before *[]*int `json:"before"`
	After  *[]*int `json:"after"`
}

// DecodeRecords parses a JSON array of records. Every field is required, list
// elements must not be null, each record must pass entities.Record.Validate and
// ids must be unique. On any violation no records are returned.
func DecodeRecords(data []byte) ([]entities.Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing record array: %w", err)
	}
	if raw == nil {
		return nil, errors.New("expected a JSON array, got null")
	}

	records := make([]entities.Record, 0, len(raw))
	seen := make(map[int]int, len(raw))
	for i, msg := range raw {
		record, err := decodeRecord(msg)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if first, dup := seen[record.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d (first seen at record %d)", i, record.ID, first)
		}
		seen[record.ID] = i
		records = append(records, record)
	}

	return records, nil
}

func decodeRecord(msg json.RawMessage) (entities.Record, error) {
	var w wireRecord
	if err := json.Unmarshal(msg, &w); err != nil {
		return entities.Record{}, err
	}

	switch {
	case w.ID == nil:
		return entities.Record{}, missingField("id")
	case w.Name == nil:
		return entities.Record{}, missingField("name")
	case w.Type == nil:
		return entities.Record{}, missingField("type")
	case w.Description == nil:
		return entities.Record{}, missingField("description")
	case w.ImageURL == nil:
		return entities.Record{}, missingField("image_url")
	case w.Evolutions == nil:
		return entities.Record{}, missingField("evolutions")
	case w.Evolutions.Before == nil:
		return entities.Record{}, missingField("evolutions.before")
	case w.Evolutions.After == nil:
		return entities.Record{}, missingField("evolutions.after")
	}

	categories, err := derefAll("type", *w.Type)
	if err != nil {
		return entities.Record{}, err
	}
	before, err := derefAll("evolutions.before", *w.Evolutions.Before)
	if err != nil {
		return entities.Record{}, err
	}
	after, err := derefAll("evolutions.after", *w.Evolutions.After)
	if err != nil {
		return entities.Record{}, err
	}

	record := entities.Record{
		ID:          *w.ID,
		Name:        *w.Name,
		Categories:  categories,
		Description: *w.Description,
		ImageURL:    *w.ImageURL,
		Evolutions: entities.EvolutionChain{
			Before: before,
			After:  after,
		},
	}

	if err := record.Validate(); err != nil {
		return entities.Record{}, err
	}

	return record, nil
}

// derefAll unwraps a decoded list, rejecting null elements. An empty list stays empty.
func derefAll[T any](field string, items []*T) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("field %q: element %d is null", field, i)
		}
		out = append(out, *item)
	}
	return out, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
