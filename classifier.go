package sharetelemetry

import "time"

// SessionStamp is the track/launch-time pair a session is classified by. Both
// raw session representations used by callers reduce to this shape.
type SessionStamp struct {
	TrackID  int64
	LaunchAt time.Time
}

// ClassifiedSession names the event group and event session a raw session
// was matched to.
type ClassifiedSession struct {
	EventGroupID   int64
	EventSessionID int64
}

// SessionClassification maps raw session ids to their classification. Sessions
// that matched no event group are absent from the map.
type SessionClassification map[int64]ClassifiedSession

// ClassifySession finds the event group and event session a session belongs
// to: the first configured session (groups in configured order, then their
// sessions in configured order) on the same track whose window contains the
// launch time, bounds inclusive. When two configured windows overlap on the
// same track, the earlier-declared one wins. Returns false when nothing
// matches; an unmatched session is not an error.
func ClassifySession(stamp SessionStamp, eventGroups []*EventGroup) (ClassifiedSession, bool) {
	for _, group := range eventGroups {
		if group.TrackID != stamp.TrackID {
			continue
		}

		for _, session := range group.Sessions {
			if session.Contains(stamp.LaunchAt) {
				return ClassifiedSession{
					EventGroupID:   group.ID,
					EventSessionID: session.ID,
				}, true
			}
		}
	}

	return ClassifiedSession{}, false
}

// BuildClassification classifies every raw session against the configured
// event groups, keeping only the sessions that matched.
func BuildClassification(sessions []*RawSession, eventGroups []*EventGroup) SessionClassification {
	classification := make(SessionClassification)

	for _, session := range sessions {
		if classified, ok := ClassifySession(session.Stamp(), eventGroups); ok {
			classification[session.ID] = classified
		}
	}

	return classification
}
