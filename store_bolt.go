package sharetelemetry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/etcd-io/bbolt"
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(db *bbolt.DB) Store {
	return &BoltStore{db: db}
}

var (
	competitionsBucketName = []byte("competitions")
	rawSessionsBucketName  = []byte("rawSessions")
	rawResultsBucketName   = []byte("rawResults")
)

func (bs *BoltStore) bucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	if !tx.Writable() {
		bkt := tx.Bucket(name)

		if bkt == nil {
			return nil, bbolt.ErrBucketNotFound
		}

		return bkt, nil
	}

	return tx.CreateBucketIfNotExists(name)
}

func (bs *BoltStore) encode(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func (bs *BoltStore) decode(data []byte, out interface{}) error {
	return json.Unmarshal(data, out)
}

func (bs *BoltStore) UpsertCompetition(c *Competition) error {
	return bs.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, competitionsBucketName)

		if err != nil {
			return err
		}

		c.Updated = time.Now()

		encoded, err := bs.encode(c)

		if err != nil {
			return err
		}

		return bkt.Put([]byte(c.ID.String()), encoded)
	})
}

func (bs *BoltStore) ListCompetitions() ([]*Competition, error) {
	var competitions []*Competition

	err := bs.db.View(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, competitionsBucketName)

		if err == bbolt.ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}

		return bkt.ForEach(func(k, v []byte) error {
			var competition *Competition

			err := bs.decode(v, &competition)

			if err != nil {
				return err
			}

			if !competition.Deleted.IsZero() {
				// soft deleted competition, move on
				return nil
			}

			competitions = append(competitions, competition)

			return nil
		})
	})

	return competitions, err
}

func (bs *BoltStore) FindCompetitionByID(uuid string) (*Competition, error) {
	var competition *Competition

	err := bs.db.View(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, competitionsBucketName)

		if err == bbolt.ErrBucketNotFound {
			return ErrCompetitionNotFound
		} else if err != nil {
			return err
		}

		data := bkt.Get([]byte(uuid))

		if data == nil {
			return ErrCompetitionNotFound
		}

		return bs.decode(data, &competition)
	})

	if err != nil {
		return nil, err
	}

	if !competition.Deleted.IsZero() {
		return nil, ErrCompetitionNotFound
	}

	return competition, nil
}

func (bs *BoltStore) DeleteCompetition(uuid string) error {
	competition, err := bs.FindCompetitionByID(uuid)

	if err != nil {
		return err
	}

	competition.Deleted = time.Now()

	return bs.UpsertCompetition(competition)
}

func (bs *BoltStore) UpsertRawSession(s *RawSession) error {
	return bs.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, rawSessionsBucketName)

		if err != nil {
			return err
		}

		encoded, err := bs.encode(s)

		if err != nil {
			return err
		}

		return bkt.Put([]byte(fmt.Sprintf("%d", s.ID)), encoded)
	})
}

func (bs *BoltStore) ListRawSessions() ([]*RawSession, error) {
	var sessions []*RawSession

	err := bs.db.View(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, rawSessionsBucketName)

		if err == bbolt.ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}

		return bkt.ForEach(func(k, v []byte) error {
			var session *RawSession

			err := bs.decode(v, &session)

			if err != nil {
				return err
			}

			sessions = append(sessions, session)

			return nil
		})
	})

	return sessions, err
}

func (bs *BoltStore) UpsertRawResult(r *RawResult) error {
	return bs.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, rawResultsBucketName)

		if err != nil {
			return err
		}

		encoded, err := bs.encode(r)

		if err != nil {
			return err
		}

		return bkt.Put([]byte(fmt.Sprintf("%d_%d", r.DriverID, r.SessionID)), encoded)
	})
}

func (bs *BoltStore) ListRawResults() ([]*RawResult, error) {
	var results []*RawResult

	err := bs.db.View(func(tx *bbolt.Tx) error {
		bkt, err := bs.bucket(tx, rawResultsBucketName)

		if err == bbolt.ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}

		return bkt.ForEach(func(k, v []byte) error {
			var result *RawResult

			err := bs.decode(v, &result)

			if err != nil {
				return err
			}

			results = append(results, result)

			return nil
		})
	})

	return results, err
}
