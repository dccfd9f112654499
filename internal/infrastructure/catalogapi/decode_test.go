package catalogapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex/internal/domain/entities"
)

// recordJSON renders one wire record, dropping the named top-level field when set.
func recordJSON(t *testing.T, id int, drop string) string {
	t.Helper()
	fields := map[string]any{
		"id":          id,
		"name":        fmt.Sprintf("Creature %d", id),
		"type":        []string{"eau", "vol"},
		"description": "lives near water",
		"image_url":   fmt.Sprintf("http://x/%d.png", id),
		"evolutions":  map[string]any{"before": []int{}, "after": []int{id + 1}},
	}
	delete(fields, drop)
	data, err := json.Marshal(fields)
	require.NoError(t, err)
	return string(data)
}

func TestDecodeRecords_PreservesOrderAndFields(t *testing.T) {
	ids := []int{7, 3, 42, 1}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, recordJSON(t, id, ""))
	}

	records, err := DecodeRecords([]byte("[" + strings.Join(parts, ",") + "]"))
	require.NoError(t, err)
	require.Len(t, records, len(ids))

	for i, id := range ids {
		assert.Equal(t, entities.Record{
			ID:          id,
			Name:        fmt.Sprintf("Creature %d", id),
			Categories:  []string{"eau", "vol"},
			Description: "lives near water",
			ImageURL:    fmt.Sprintf("http://x/%d.png", id),
			Evolutions:  entities.EvolutionChain{Before: []int{}, After: []int{id + 1}},
		}, records[i])
	}
}

func TestDecodeRecords_IgnoresUnknownFields(t *testing.T) {
	body := `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]},"height":7}]`

	records, err := DecodeRecords([]byte(body))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDecodeRecords_MissingFields(t *testing.T) {
	for _, field := range []string{"id", "name", "type", "description", "image_url", "evolutions"} {
		t.Run(field, func(t *testing.T) {
			records, err := DecodeRecords([]byte("[" + recordJSON(t, 1, field) + "]"))
			require.Error(t, err)
			assert.Nil(t, records)
			assert.Contains(t, err.Error(), fmt.Sprintf("missing required field %q", field))
		})
	}
}

func TestDecodeRecords_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "null document",
			body:   `null`,
			errMsg: "got null",
		},
		{
			name:   "trailing garbage",
			body:   `[] []`,
			errMsg: "parsing record array",
		},
		{
			name:   "null type",
			body:   `[{"id":1,"name":"Sala","type":null,"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`,
			errMsg: `missing required field "type"`,
		},
		{
			name:   "missing evolutions.after",
			body:   `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[]}}]`,
			errMsg: `missing required field "evolutions.after"`,
		},
		{
			name:   "string in evolution list",
			body:   `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":["x"],"after":[]}}]`,
			errMsg: "record 0",
		},
		{
			name:   "fractional id",
			body:   `[{"id":1.5,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`,
			errMsg: "record 0",
		},
		{
			name:   "zero id",
			body:   `[{"id":0,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`,
			errMsg: `"id" must be positive`,
		},
		{
			name:   "empty type list",
			body:   `[{"id":1,"name":"Sala","type":[],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`,
			errMsg: `"type" must not be empty`,
		},
		{
			name:   "null inside type list",
			body:   `[{"id":1,"name":"Sala","type":[null],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`,
			errMsg: `field "type": element 0 is null`,
		},
		{
			name:   "null inside evolutions.before",
			body:   `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[null],"after":[]}}]`,
			errMsg: `field "evolutions.before": element 0 is null`,
		},
		{
			name:   "null after valid evolutions.after entry",
			body:   `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[],"after":[2,null]}}]`,
			errMsg: `field "evolutions.after": element 1 is null`,
		},
		{
			name:   "empty name",
			body:   `[{"id":1,"name":"","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`,
			errMsg: `field "name" must not be empty`,
		},
		{
			name:   "record is not an object",
			body:   `[1]`,
			errMsg: "record 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := DecodeRecords([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, records)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDecodeRecords_DuplicateID(t *testing.T) {
	body := "[" + recordJSON(t, 4, "") + "," + recordJSON(t, 5, "") + "," + recordJSON(t, 4, "") + "]"

	records, err := DecodeRecords([]byte(body))
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "record 2: duplicate id 4 (first seen at record 0)")
}

func TestDecodeRecords_KeepsEmptyLists(t *testing.T) {
	body := `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"u","evolutions":{"before":[],"after":[]}}]`

	records, err := DecodeRecords([]byte(body))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].Evolutions.Before)
	assert.Empty(t, records[0].Evolutions.Before)
	assert.NotNil(t, records[0].Evolutions.After)
}
