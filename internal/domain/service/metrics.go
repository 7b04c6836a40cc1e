package service

import "time"

// MetricsRecorder receives domain-level counters from the use cases and provider clients.
type MetricsRecorder interface {
	RecordCollectionChange(collection, op string)
	RecordWriteConflict()
	RecordProviderCall(provider string, err error, elapsed time.Duration)
}
