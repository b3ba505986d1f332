package sharetelemetry

import "time"

// A RawSession is an unclassified telemetry session: a track and a launch time.
// Classification decides which EventGroup/EventSession (if any) it belongs to.
type RawSession struct {
	ID       int64
	TrackID  int64
	LaunchAt time.Time
}

// Stamp returns the track/launch-time pair used for classification.
func (s *RawSession) Stamp() SessionStamp {
	return SessionStamp{
		TrackID:  s.TrackID,
		LaunchAt: s.LaunchAt,
	}
}

// A RawResult is one driver's outcome in one raw session. AverageLapTime is in
// milliseconds; a value of zero or below means the driver set no valid time.
type RawResult struct {
	DriverID  int64
	SessionID int64

	AverageLapTime int64

	// Laps carries the per-lap detail as received. It is stored and served
	// back but never inspected by the classification or ranking code.
	Laps []Lap
}

// HasValidTime reports whether the result carries a usable average lap time.
func (r *RawResult) HasValidTime() bool {
	return r.AverageLapTime > 0
}

type Lap struct {
	Number  int
	LapTime int64
	Cuts    int
}
