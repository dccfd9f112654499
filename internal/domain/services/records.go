// Package services contains domain services built on top of the ports.
package services

import (
	"context"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// NetworkRecordRepository serves records straight from a RecordSource.
// It adds nothing on top: no caching, no retry and no error translation.
type NetworkRecordRepository struct {
	source ports.RecordSource
}

// Verify NetworkRecordRepository satisfies ports.RecordRepository at compile time.
var _ ports.RecordRepository = (*NetworkRecordRepository)(nil)

// NewNetworkRecordRepository creates a repository backed by the given source.
func NewNetworkRecordRepository(source ports.RecordSource) *NetworkRecordRepository {
	return &NetworkRecordRepository{
		source: source,
	}
}

// GetRecords fetches the catalog from the source. Errors are returned unchanged
// so callers can still match *ports.TransportError and *ports.DecodeError.
func (r *NetworkRecordRepository) GetRecords(ctx context.Context) ([]entities.Record, error) {
	return r.source.FetchRecords(ctx)
}
