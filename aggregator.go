package sharetelemetry

// BestResults is the minimum average lap time (in milliseconds) seen per
// driver, per event group, per event session.
type BestResults map[int64]map[int64]map[int64]int64

// ForDriver returns the driver's per-group best times, or nil if the driver
// has none recorded.
func (b BestResults) ForDriver(driverID int64) map[int64]map[int64]int64 {
	return b[driverID]
}

func (b BestResults) record(driverID, eventGroupID, eventSessionID, averageLapTime int64) {
	groups, ok := b[driverID]

	if !ok {
		groups = make(map[int64]map[int64]int64)
		b[driverID] = groups
	}

	sessions, ok := groups[eventGroupID]

	if !ok {
		sessions = make(map[int64]int64)
		groups[eventGroupID] = sessions
	}

	if best, ok := sessions[eventSessionID]; !ok || averageLapTime < best {
		sessions[eventSessionID] = averageLapTime
	}
}

// AggregateBestResults folds raw results into per-driver best times. Results
// are silently excluded when the driver is not on the roster, the average
// lap time is missing or non-positive, or the session was never classified.
// The fold keeps a minimum per key, so the order of the input results does
// not affect the outcome.
func AggregateBestResults(results []*RawResult, classification SessionClassification, allowedDriverIDs map[int64]bool) BestResults {
	best := make(BestResults)

	for _, result := range results {
		if !allowedDriverIDs[result.DriverID] {
			continue
		}

		if !result.HasValidTime() {
			continue
		}

		classified, ok := classification[result.SessionID]

		if !ok {
			continue
		}

		best.record(result.DriverID, classified.EventGroupID, classified.EventSessionID, result.AverageLapTime)
	}

	return best
}
