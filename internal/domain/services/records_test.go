package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/mocks"
	"github.com/ersonp/dex/internal/domain/ports"
)

func TestNetworkRecordRepository_GetRecords(t *testing.T) {
	records := []entities.Record{
		{ID: 2, Name: "Herbi", Categories: []string{"plante"}},
		{ID: 1, Name: "Sala", Categories: []string{"plante"}},
	}
	source := &mocks.RecordSource{Records: records}
	repo := NewNetworkRecordRepository(source)

	result, err := repo.GetRecords(t.Context())
	require.NoError(t, err)
	assert.Equal(t, records, result)
	assert.Equal(t, 1, source.CallCount())
}

func TestNetworkRecordRepository_NoCaching(t *testing.T) {
	source := &mocks.RecordSource{Records: []entities.Record{}}
	repo := NewNetworkRecordRepository(source)

	for range 3 {
		_, err := repo.GetRecords(t.Context())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, source.CallCount())
}

func TestNetworkRecordRepository_PropagatesErrorsUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "transport",
			err:      &ports.TransportError{Op: "unexpected status", StatusCode: 500},
			sentinel: ports.ErrTransport,
		},
		{
			name:     "decode",
			err:      &ports.DecodeError{Err: errors.New("bad json")},
			sentinel: ports.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewNetworkRecordRepository(&mocks.RecordSource{Err: tt.err})

			result, err := repo.GetRecords(t.Context())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Same(t, tt.err, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}
