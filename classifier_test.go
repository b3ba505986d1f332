package sharetelemetry

import (
	"testing"
	"time"
)

func classifierDate(hour, min int) time.Time {
	return time.Date(2024, time.March, 9, hour, min, 0, 0, time.UTC)
}

var classifierEventGroups = []*EventGroup{
	{
		ID:      1,
		TrackID: 100,
		Sessions: []*EventSession{
			{ID: 11, FromTime: classifierDate(10, 0), ToTime: classifierDate(11, 0)},
			// overlaps session 11; declaration order decides the match
			{ID: 12, FromTime: classifierDate(10, 30), ToTime: classifierDate(12, 0)},
		},
	},
	{
		ID:      2,
		TrackID: 200,
		Sessions: []*EventSession{
			{ID: 21, FromTime: classifierDate(10, 0), ToTime: classifierDate(11, 0)},
		},
	},
}

type classifySessionTest struct {
	name  string
	stamp SessionStamp

	expected ClassifiedSession
	ok       bool
}

func TestClassifySession(t *testing.T) {
	classifySessionTests := []classifySessionTest{
		{
			name:     "inside first window",
			stamp:    SessionStamp{TrackID: 100, LaunchAt: classifierDate(10, 15)},
			expected: ClassifiedSession{EventGroupID: 1, EventSessionID: 11},
			ok:       true,
		},
		{
			name:     "overlap resolves to earlier declared session",
			stamp:    SessionStamp{TrackID: 100, LaunchAt: classifierDate(10, 45)},
			expected: ClassifiedSession{EventGroupID: 1, EventSessionID: 11},
			ok:       true,
		},
		{
			name:     "after first window closes the second takes over",
			stamp:    SessionStamp{TrackID: 100, LaunchAt: classifierDate(11, 30)},
			expected: ClassifiedSession{EventGroupID: 1, EventSessionID: 12},
			ok:       true,
		},
		{
			name:     "window start is inclusive",
			stamp:    SessionStamp{TrackID: 200, LaunchAt: classifierDate(10, 0)},
			expected: ClassifiedSession{EventGroupID: 2, EventSessionID: 21},
			ok:       true,
		},
		{
			name:     "window end is inclusive",
			stamp:    SessionStamp{TrackID: 200, LaunchAt: classifierDate(11, 0)},
			expected: ClassifiedSession{EventGroupID: 2, EventSessionID: 21},
			ok:       true,
		},
		{
			name:  "track matches but launch time outside every window",
			stamp: SessionStamp{TrackID: 200, LaunchAt: classifierDate(11, 1)},
			ok:    false,
		},
		{
			name:  "unknown track",
			stamp: SessionStamp{TrackID: 300, LaunchAt: classifierDate(10, 15)},
			ok:    false,
		},
	}

	for _, x := range classifySessionTests {
		t.Run(x.name, func(t *testing.T) {
			classified, ok := ClassifySession(x.stamp, classifierEventGroups)

			if ok != x.ok {
				t.Logf("Expected ok: %v, got %v", x.ok, ok)
				t.Fail()
			}

			if ok && classified != x.expected {
				t.Logf("Expected: %+v, got %+v", x.expected, classified)
				t.Fail()
			}

			// classification is pure: a second call must agree
			again, againOK := ClassifySession(x.stamp, classifierEventGroups)

			if again != classified || againOK != ok {
				t.Logf("ClassifySession was not deterministic for %+v", x.stamp)
				t.Fail()
			}
		})
	}
}

func TestBuildClassification(t *testing.T) {
	sessions := []*RawSession{
		{ID: 1, TrackID: 100, LaunchAt: classifierDate(10, 15)},
		{ID: 2, TrackID: 200, LaunchAt: classifierDate(10, 30)},
		{ID: 3, TrackID: 100, LaunchAt: classifierDate(23, 0)},
		{ID: 4, TrackID: 999, LaunchAt: classifierDate(10, 30)},
	}

	classification := BuildClassification(sessions, classifierEventGroups)

	if len(classification) != 2 {
		t.Fatalf("Expected 2 classified sessions, got %d", len(classification))
	}

	if classification[1] != (ClassifiedSession{EventGroupID: 1, EventSessionID: 11}) {
		t.Errorf("session 1 misclassified: %+v", classification[1])
	}

	if classification[2] != (ClassifiedSession{EventGroupID: 2, EventSessionID: 21}) {
		t.Errorf("session 2 misclassified: %+v", classification[2])
	}

	if _, ok := classification[3]; ok {
		t.Error("session 3 launched outside every window but was classified")
	}

	if _, ok := classification[4]; ok {
		t.Error("session 4 is on an unconfigured track but was classified")
	}
}
