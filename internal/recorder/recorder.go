package recorder

import "time"

// LookupEvent records one stock lookup and how it ended.
type LookupEvent struct {
	Timestamp   time.Time
	Symbol      string
	Source      string
	OK          bool
	Status      int    // HTTP status for API failures, 0 otherwise
	Message     string // user-facing error text when !OK
	Points      int
	LatestClose float64
	Duration    time.Duration
}

// PredictionEvent records one prediction attempt.
type PredictionEvent struct {
	Timestamp      time.Time
	Symbol         string
	Source         string // "remote" or "local"
	Days           int
	PredictedClose float64
	OK             bool
	Message        string
}

// Recorder persists lookup history for later inspection.
type Recorder interface {
	RecordLookup(evt *LookupEvent) error
	RecordPrediction(evt *PredictionEvent) error
	RecentLookups(limit int) ([]LookupEvent, error)
	Close() error
}
