package sharetelemetry

type Store interface {
	// Competitions
	UpsertCompetition(c *Competition) error
	ListCompetitions() ([]*Competition, error)
	FindCompetitionByID(uuid string) (*Competition, error)
	DeleteCompetition(uuid string) error

	// Raw telemetry
	UpsertRawSession(s *RawSession) error
	ListRawSessions() ([]*RawSession, error)

	UpsertRawResult(r *RawResult) error
	ListRawResults() ([]*RawResult, error)
}
