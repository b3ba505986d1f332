package sharetelemetry

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
)

type RankingsHandler struct {
	competitionManager *CompetitionManager
}

func NewRankingsHandler(competitionManager *CompetitionManager) *RankingsHandler {
	return &RankingsHandler{
		competitionManager: competitionManager,
	}
}

func (rh *RankingsHandler) view(w http.ResponseWriter, r *http.Request) {
	ranking, err := rh.competitionManager.Ranking(chi.URLParam(r, "competitionID"))

	if err == ErrCompetitionNotFound {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Errorf("could not build ranking, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rankingsServed.Inc()

	renderJSON(w, ranking)
}
