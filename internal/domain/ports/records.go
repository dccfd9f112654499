// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/dex/internal/domain/entities"
)

// RecordSource fetches the full catalog from wherever it is published.
type RecordSource interface {
	// FetchRecords performs one fresh round trip and returns the batch in source order.
	// Failures are *TransportError or *DecodeError.
	FetchRecords(ctx context.Context) ([]entities.Record, error)
}

// RecordRepository is the seam the view-state controller depends on.
type RecordRepository interface {
	// GetRecords returns the current catalog batch.
	GetRecords(ctx context.Context) ([]entities.Record, error)
}
