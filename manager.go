package sharetelemetry

import (
	"golang.org/x/sync/errgroup"
)

// CompetitionManager loads a competition and its raw telemetry from the Store
// and runs the classification, aggregation, ranking and matrix steps over
// them. Every call derives its output fresh from the stored data.
type CompetitionManager struct {
	store Store
}

func NewCompetitionManager(store Store) *CompetitionManager {
	return &CompetitionManager{
		store: store,
	}
}

type competitionData struct {
	competition *Competition
	sessions    []*RawSession
	results     []*RawResult
}

// loadCompetitionData issues the competition read and the telemetry reads
// concurrently. The two are independent; the engine needs both before it can
// classify anything.
func (cm *CompetitionManager) loadCompetitionData(uuid string) (*competitionData, error) {
	data := &competitionData{}

	var g errgroup.Group

	g.Go(func() error {
		competition, err := cm.store.FindCompetitionByID(uuid)

		if err != nil {
			return err
		}

		data.competition = competition

		return nil
	})

	g.Go(func() error {
		sessions, err := cm.store.ListRawSessions()

		if err != nil {
			return err
		}

		results, err := cm.store.ListRawResults()

		if err != nil {
			return err
		}

		data.sessions = sessions
		data.results = results

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

// Ranking computes the competition ranking from the stored telemetry.
func (cm *CompetitionManager) Ranking(uuid string) ([]*RankingItem, error) {
	data, err := cm.loadCompetitionData(uuid)

	if err != nil {
		return nil, err
	}

	classification := BuildClassification(data.sessions, data.competition.EventGroups)
	best := AggregateBestResults(data.results, classification, data.competition.DriverIDSet())

	return CalculateRanking(best, data.competition.DriverIDs(), data.competition.EventGroups), nil
}

// Matrix builds the driver-by-session export table from the stored telemetry.
func (cm *CompetitionManager) Matrix(uuid string) (*SessionMatrix, error) {
	data, err := cm.loadCompetitionData(uuid)

	if err != nil {
		return nil, err
	}

	classification := BuildClassification(data.sessions, data.competition.EventGroups)

	return BuildSessionMatrix(data.sessions, classification, data.results, data.competition.Drivers), nil
}
