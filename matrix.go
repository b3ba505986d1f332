package sharetelemetry

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
)

const matrixTimestampFormat = "2006-01-02 15:04"

// A SessionMatrix is the driver-by-session export table: one column per
// classified session (ascending by launch time) and one row per roster entry.
// Cells hold the driver's raw average lap time for that exact session,
// rendered with FormatLapTime, or an empty string when the driver has no
// result there. No aggregation or validity filtering happens here.
type SessionMatrix struct {
	Header []string
	Rows   [][]string
}

// BuildSessionMatrix builds the export table. Sessions absent from the
// classification are dropped; the rest are ordered by launch time, ties
// keeping input order. Roster entries are emitted as supplied, duplicates
// included. When a driver has more than one result for the same session, the
// first one in input order is used.
func BuildSessionMatrix(sessions []*RawSession, classification SessionClassification, results []*RawResult, roster []Driver) *SessionMatrix {
	var classified []*RawSession

	for _, session := range sessions {
		if _, ok := classification[session.ID]; ok {
			classified = append(classified, session)
		}
	}

	sort.SliceStable(classified, func(i, j int) bool {
		return classified[i].LaunchAt.Before(classified[j].LaunchAt)
	})

	timesByDriver := make(map[int64]map[int64]int64)

	for _, result := range results {
		times, ok := timesByDriver[result.DriverID]

		if !ok {
			times = make(map[int64]int64)
			timesByDriver[result.DriverID] = times
		}

		if _, ok := times[result.SessionID]; !ok {
			times[result.SessionID] = result.AverageLapTime
		}
	}

	header := []string{"Driver", "ID"}

	for _, session := range classified {
		header = append(header, session.LaunchAt.Format(matrixTimestampFormat))
	}

	matrix := &SessionMatrix{
		Header: header,
	}

	for _, driver := range roster {
		row := []string{driver.FullName(), strconv.FormatInt(driver.ID, 10)}

		for _, session := range classified {
			if lapTime, ok := timesByDriver[driver.ID][session.ID]; ok {
				row = append(row, FormatLapTime(lapTime))
			} else {
				row = append(row, "")
			}
		}

		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix
}

// WriteCSV writes the matrix as semicolon-delimited text.
func (m *SessionMatrix) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(m.Header); err != nil {
		return err
	}

	for _, row := range m.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}
