package sharetelemetry

import "time"

const lapTimeFormat = "04:05.000"

// FormatLapTime renders a lap time in milliseconds as "MM:SS.mmm". Zero and
// negative sentinels go through the same rule as real times; callers that
// want them hidden must filter first.
func FormatLapTime(milliseconds int64) string {
	epoch := time.Unix(0, 0).UTC()

	return epoch.Add(time.Duration(milliseconds) * time.Millisecond).Format(lapTimeFormat)
}
