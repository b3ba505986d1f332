package sharetelemetry

import "testing"

type formatLapTimeTest struct {
	milliseconds int64
	expected     string
}

func TestFormatLapTime(t *testing.T) {
	formatLapTimeTests := []formatLapTimeTest{
		{milliseconds: 83456, expected: "01:23.456"},
		{milliseconds: 60000, expected: "01:00.000"},
		{milliseconds: 999, expected: "00:00.999"},
		{milliseconds: 0, expected: "00:00.000"},
		// sentinels go through the same rule, wrapping below the epoch
		{milliseconds: -5, expected: "59:59.995"},
	}

	for _, x := range formatLapTimeTests {
		if got := FormatLapTime(x.milliseconds); got != x.expected {
			t.Logf("Expected: %s, got %s", x.expected, got)
			t.Fail()
		}
	}
}
