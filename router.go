package sharetelemetry

import (
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

var Debug = os.Getenv("DEBUG") == "true"

func InitLogging() {
	if !Debug {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logFile, err := os.OpenFile("sharetelemetry-results.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)

	if err == nil {
		logrus.SetOutput(io.MultiWriter(os.Stdout, logFile))
	} else {
		logrus.WithError(err).Errorf("Could not create log file")
		logrus.SetOutput(os.Stdout)
	}
}

func Router(
	competitionsHandler *CompetitionsHandler,
	telemetryHandler *TelemetryHandler,
	rankingsHandler *RankingsHandler,
	exportHandler *ExportHandler,
	healthCheck *HealthCheck,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(prometheusMonitoringWrapper)

	r.Handle("/metrics", prometheusMonitoringHandler())
	r.Get("/healthcheck.json", healthCheck.serve)

	if Debug {
		r.Mount("/debug/", middleware.Profiler())
	}

	// competitions
	r.Get("/competitions", competitionsHandler.list)
	r.Post("/competitions", competitionsHandler.upsert)
	r.Get("/competitions/{competitionID}", competitionsHandler.view)
	r.Delete("/competitions/{competitionID}", competitionsHandler.delete)

	// rankings and exports
	r.Get("/competitions/{competitionID}/ranking", rankingsHandler.view)
	r.Get("/competitions/{competitionID}/export/csv", exportHandler.csv)
	r.Get("/competitions/{competitionID}/export/xlsx", exportHandler.xlsx)

	// raw telemetry ingest
	r.Get("/sessions", telemetryHandler.listSessions)
	r.Post("/sessions", telemetryHandler.submitSessions)
	r.Post("/results", telemetryHandler.submitResults)

	return r
}
