package sharetelemetry

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	competitionManager *CompetitionManager
}

func NewExportHandler(competitionManager *CompetitionManager) *ExportHandler {
	return &ExportHandler{
		competitionManager: competitionManager,
	}
}

func (eh *ExportHandler) matrix(w http.ResponseWriter, r *http.Request) (*SessionMatrix, bool) {
	matrix, err := eh.competitionManager.Matrix(chi.URLParam(r, "competitionID"))

	if err == ErrCompetitionNotFound {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return nil, false
	} else if err != nil {
		logrus.Errorf("could not build session matrix, err: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}

	return matrix, true
}

func (eh *ExportHandler) csv(w http.ResponseWriter, r *http.Request) {
	matrix, ok := eh.matrix(w, r)

	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", chi.URLParam(r, "competitionID")))

	if err := matrix.WriteCSV(w); err != nil {
		logrus.Errorf("could not write csv export, err: %s", err)
	}
}

func (eh *ExportHandler) xlsx(w http.ResponseWriter, r *http.Request) {
	matrix, ok := eh.matrix(w, r)

	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", chi.URLParam(r, "competitionID")))
	w.Header().Set("Content-Transfer-Encoding", "binary")

	if err := matrix.WriteXLSX(w); err != nil {
		logrus.Errorf("could not write xlsx export, err: %s", err)
	}
}
