package sharetelemetry

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"
)

func matrixDate(hour int) time.Time {
	return time.Date(2024, time.March, 9, hour, 0, 0, 0, time.UTC)
}

func matrixFixture() ([]*RawSession, SessionClassification, []*RawResult, []Driver) {
	sessions := []*RawSession{
		// supplied out of launch order on purpose
		{ID: 2, TrackID: 100, LaunchAt: matrixDate(14)},
		{ID: 1, TrackID: 100, LaunchAt: matrixDate(10)},
		{ID: 3, TrackID: 100, LaunchAt: matrixDate(16)},
	}

	classification := SessionClassification{
		1: {EventGroupID: 1, EventSessionID: 11},
		2: {EventGroupID: 1, EventSessionID: 12},
		// session 3 is unclassified
	}

	results := []*RawResult{
		{DriverID: 501, SessionID: 1, AverageLapTime: 83456},
		{DriverID: 501, SessionID: 2, AverageLapTime: 0}, // sentinel, still rendered
		{DriverID: 502, SessionID: 2, AverageLapTime: 91000},
		{DriverID: 502, SessionID: 3, AverageLapTime: 90000}, // unclassified, never shown
	}

	roster := []Driver{
		{ID: 501, FirstName: "Ayrton", LastName: "Senna"},
		{ID: 502, FirstName: "Alain", LastName: "Prost"},
		{ID: 501, FirstName: "Ayrton", LastName: "Senna"}, // configuration duplicate kept as-is
	}

	return sessions, classification, results, roster
}

func TestBuildSessionMatrix(t *testing.T) {
	sessions, classification, results, roster := matrixFixture()

	matrix := BuildSessionMatrix(sessions, classification, results, roster)

	expectedHeader := []string{"Driver", "ID", "2024-03-09 10:00", "2024-03-09 14:00"}

	if !reflect.DeepEqual(matrix.Header, expectedHeader) {
		t.Errorf("expected header %v, got %v", expectedHeader, matrix.Header)
	}

	if len(matrix.Rows) != 3 {
		t.Fatalf("expected one row per roster entry (3), got %d", len(matrix.Rows))
	}

	expectedRows := [][]string{
		{"Ayrton Senna", "501", "01:23.456", "00:00.000"},
		{"Alain Prost", "502", "", "01:31.000"},
		{"Ayrton Senna", "501", "01:23.456", "00:00.000"},
	}

	for i, expected := range expectedRows {
		if !reflect.DeepEqual(matrix.Rows[i], expected) {
			t.Errorf("row %d: expected %v, got %v", i, expected, matrix.Rows[i])
		}
	}
}

func TestSessionMatrix_WriteCSVRoundTrip(t *testing.T) {
	sessions, classification, results, roster := matrixFixture()

	matrix := BuildSessionMatrix(sessions, classification, results, roster)

	var buf bytes.Buffer

	if err := matrix.WriteCSV(&buf); err != nil {
		t.Fatalf("could not write csv, err: %s", err)
	}

	reader := csv.NewReader(&buf)
	reader.Comma = ';'

	records, err := reader.ReadAll()

	if err != nil {
		t.Fatalf("could not re-parse csv, err: %s", err)
	}

	if !reflect.DeepEqual(records[0], matrix.Header) {
		t.Errorf("header did not survive the round trip: %v", records[0])
	}

	for i, row := range matrix.Rows {
		if !reflect.DeepEqual(records[i+1], row) {
			t.Errorf("row %d did not survive the round trip: %v", i, records[i+1])
		}
	}
}

func TestSessionMatrix_WriteXLSX(t *testing.T) {
	sessions, classification, results, roster := matrixFixture()

	matrix := BuildSessionMatrix(sessions, classification, results, roster)

	var buf bytes.Buffer

	if err := matrix.WriteXLSX(&buf); err != nil {
		t.Fatalf("could not write xlsx, err: %s", err)
	}

	if buf.Len() == 0 {
		t.Error("xlsx export produced no data")
	}
}
