package sharetelemetry

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CompetitionsHandler struct {
	store Store
}

func NewCompetitionsHandler(store Store) *CompetitionsHandler {
	return &CompetitionsHandler{
		store: store,
	}
}

func (ch *CompetitionsHandler) list(w http.ResponseWriter, r *http.Request) {
	competitions, err := ch.store.ListCompetitions()

	if err != nil {
		logrus.Errorf("could not list competitions, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	renderJSON(w, competitions)
}

func (ch *CompetitionsHandler) view(w http.ResponseWriter, r *http.Request) {
	competition, err := ch.store.FindCompetitionByID(chi.URLParam(r, "competitionID"))

	if err == ErrCompetitionNotFound {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Errorf("could not load competition, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	renderJSON(w, competition)
}

func (ch *CompetitionsHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var competition *Competition

	if err := json.NewDecoder(r.Body).Decode(&competition); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if competition.ID == uuid.Nil {
		competition.ID = uuid.New()
		competition.Created = time.Now()
	}

	if err := ch.store.UpsertCompetition(competition); err != nil {
		logrus.Errorf("could not save competition, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	renderJSON(w, competition)
}

func (ch *CompetitionsHandler) delete(w http.ResponseWriter, r *http.Request) {
	err := ch.store.DeleteCompetition(chi.URLParam(r, "competitionID"))

	if err == ErrCompetitionNotFound {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Errorf("could not delete competition, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
