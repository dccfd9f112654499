// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"slices"
)

// EvolutionChain holds the identifiers of a record's predecessors and successors.
// References are by value and may point at records that are not in the batch.
type EvolutionChain struct {
	Before []int `json:"before" yaml:"before"`
	After  []int `json:"after" yaml:"after"`
}

// Record is one catalog entry. Records are only created by decoding a fetch
// response and are never mutated afterwards.
type Record struct {
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Categories  []string       `json:"type" yaml:"type"`
	Description string         `json:"description" yaml:"description"`
	ImageURL    string         `json:"image_url" yaml:"image_url"`
	Evolutions  EvolutionChain `json:"evolutions" yaml:"evolutions"`
}

// PrimaryCategory returns the first category, which drives display attributes.
func (r Record) PrimaryCategory() string {
	if len(r.Categories) == 0 {
		return ""
	}
	return r.Categories[0]
}

// DisplayID formats the identifier as a zero-padded catalog number (e.g. "#001").
func (r Record) DisplayID() string {
	return fmt.Sprintf("#%03d", r.ID)
}

// Validate checks the record invariants. Error text names the wire field.
func (r Record) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf(`field "id" must be positive, got %d`, r.ID)
	}
	if r.Name == "" {
		return errors.New(`field "name" must not be empty`)
	}
	if len(r.Categories) == 0 {
		return errors.New(`field "type" must not be empty`)
	}
	return nil
}

// Clone returns a deep copy so holders of a batch cannot alias each other's slices.
// Empty lists stay empty and nil lists stay nil.
func (r Record) Clone() Record {
	c := r
	c.Categories = slices.Clone(r.Categories)
	c.Evolutions.Before = slices.Clone(r.Evolutions.Before)
	c.Evolutions.After = slices.Clone(r.Evolutions.After)
	return c
}

// CloneRecords deep-copies a batch, preserving order. A nil batch stays nil.
func CloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}
