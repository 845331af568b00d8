package store

import (
	"context"
	"time"

	"github.com/abhisek/limbcalc/internal/calc"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	Limit  int         // max results (0 = unlimited)
	Status calc.Status // exact status match ("" = any)
	After  int64       // sequence > After
	From   time.Time   // timestamp >= From
	To     time.Time   // timestamp <= To
}

// Attempt is one stored calculation attempt.
type Attempt struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Input     string
	Operand1  int
	Operand2  int
	Total     int
	Count     int
	Status    calc.Status
	Message   string
}

// AttemptFromOutcome converts a machine outcome into a storable attempt.
func AttemptFromOutcome(o calc.Outcome) Attempt {
	return Attempt{
		Timestamp: o.At,
		SessionID: o.SessionID,
		Input:     o.Input,
		Operand1:  o.Operand1,
		Operand2:  o.Operand2,
		Total:     o.Total,
		Count:     o.Count,
		Status:    o.Status,
		Message:   o.Message,
	}
}

// Stats aggregates stored attempts.
type Stats struct {
	Total    int
	ByStatus map[calc.Status]int

	// LargestSum is the highest total among completed attempts.
	LargestSum int
}

// AttemptRepo provides access to stored attempts.
type AttemptRepo interface {
	// Append stores an attempt, assigning its sequence number.
	// A zero Timestamp is replaced with the current time.
	Append(ctx context.Context, a Attempt) (Attempt, error)

	// Query returns attempts newest first.
	Query(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// Stats summarizes all stored attempts.
	Stats(ctx context.Context) (Stats, error)

	// Clear deletes all attempts and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
}
