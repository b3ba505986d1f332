package sharetelemetry

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// TelemetryHandler ingests raw sessions and raw results. Records arrive in
// batches and are upserted individually; classification happens later, when a
// ranking or matrix is requested.
type TelemetryHandler struct {
	store Store
}

func NewTelemetryHandler(store Store) *TelemetryHandler {
	return &TelemetryHandler{
		store: store,
	}
}

func (th *TelemetryHandler) submitSessions(w http.ResponseWriter, r *http.Request) {
	var sessions []*RawSession

	if err := json.NewDecoder(r.Body).Decode(&sessions); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for _, session := range sessions {
		if err := th.store.UpsertRawSession(session); err != nil {
			logrus.Errorf("could not save raw session, err: %s", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (th *TelemetryHandler) submitResults(w http.ResponseWriter, r *http.Request) {
	var results []*RawResult

	if err := json.NewDecoder(r.Body).Decode(&results); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for _, result := range results {
		if err := th.store.UpsertRawResult(result); err != nil {
			logrus.Errorf("could not save raw result, err: %s", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (th *TelemetryHandler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := th.store.ListRawSessions()

	if err != nil {
		logrus.Errorf("could not list raw sessions, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	renderJSON(w, sessions)
}
