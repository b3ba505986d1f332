package sharetelemetry

import "net/http"

type Resolver struct {
	store Store

	competitionManager *CompetitionManager

	// handlers
	competitionsHandler *CompetitionsHandler
	telemetryHandler    *TelemetryHandler
	rankingsHandler     *RankingsHandler
	exportHandler       *ExportHandler
	healthCheck         *HealthCheck
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

func (r *Resolver) resolveCompetitionManager() *CompetitionManager {
	if r.competitionManager != nil {
		return r.competitionManager
	}

	r.competitionManager = NewCompetitionManager(r.store)

	return r.competitionManager
}

func (r *Resolver) resolveCompetitionsHandler() *CompetitionsHandler {
	if r.competitionsHandler != nil {
		return r.competitionsHandler
	}

	r.competitionsHandler = NewCompetitionsHandler(r.store)

	return r.competitionsHandler
}

func (r *Resolver) resolveTelemetryHandler() *TelemetryHandler {
	if r.telemetryHandler != nil {
		return r.telemetryHandler
	}

	r.telemetryHandler = NewTelemetryHandler(r.store)

	return r.telemetryHandler
}

func (r *Resolver) resolveRankingsHandler() *RankingsHandler {
	if r.rankingsHandler != nil {
		return r.rankingsHandler
	}

	r.rankingsHandler = NewRankingsHandler(r.resolveCompetitionManager())

	return r.rankingsHandler
}

func (r *Resolver) resolveExportHandler() *ExportHandler {
	if r.exportHandler != nil {
		return r.exportHandler
	}

	r.exportHandler = NewExportHandler(r.resolveCompetitionManager())

	return r.exportHandler
}

func (r *Resolver) resolveHealthCheck() *HealthCheck {
	if r.healthCheck != nil {
		return r.healthCheck
	}

	r.healthCheck = NewHealthCheck(r.store)

	return r.healthCheck
}

func (r *Resolver) ResolveRouter() http.Handler {
	return Router(
		r.resolveCompetitionsHandler(),
		r.resolveTelemetryHandler(),
		r.resolveRankingsHandler(),
		r.resolveExportHandler(),
		r.resolveHealthCheck(),
	)
}
