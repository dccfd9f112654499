package handlers

import "github.com/ersonp/dex/internal/domain/entities"

// Status identifies which variant a State holds.
type Status int

// The three catalog view states.
const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the catalog view. Exactly one variant is
// active; only the success variant carries records.
type State struct {
	status  Status
	records []entities.Record
}

// LoadingState is the state while a fetch is in flight.
func LoadingState() State {
	return State{status: StatusLoading}
}

// SuccessState holds a fetched batch. A nil batch is stored as empty.
func SuccessState(records []entities.Record) State {
	if records == nil {
		records = []entities.Record{}
	}
	return State{status: StatusSuccess, records: records}
}

// ErrorState is the state after a failed fetch. It carries no detail.
func ErrorState() State {
	return State{status: StatusError}
}

// Status returns the active variant.
func (s State) Status() Status {
	return s.status
}

// Records returns a copy of the batch for the success variant, nil otherwise.
func (s State) Records() []entities.Record {
	if s.status != StatusSuccess {
		return nil
	}
	return entities.CloneRecords(s.records)
}

// IsLoading reports whether a fetch is in flight.
func (s State) IsLoading() bool { return s.status == StatusLoading }

// IsSuccess reports whether the state holds a fetched batch.
func (s State) IsSuccess() bool { return s.status == StatusSuccess }

// IsError reports whether the last fetch failed.
func (s State) IsError() bool { return s.status == StatusError }
