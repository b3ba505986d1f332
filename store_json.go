package sharetelemetry

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	competitionsDir = "competitions"
	rawSessionsFile = "raw_sessions.json"
	rawResultsFile  = "raw_results.json"
)

func NewJSONStore(dir string) Store {
	return &JSONStore{
		base: dir,
	}
}

type JSONStore struct {
	base string

	mutex sync.RWMutex
}

func (js *JSONStore) listFiles(dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)

	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	var list []string

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		list = append(list, strings.TrimSuffix(file.Name(), ".json"))
	}

	return list, nil
}

func (js *JSONStore) encodeFile(filename string, data interface{}) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	filename = filepath.Join(js.base, filename)

	dir := filepath.Dir(filename)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)

		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	f, err := os.Create(filename)

	if err != nil {
		return err
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}

func (js *JSONStore) decodeFile(filename string, out interface{}) error {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	f, err := os.Open(filepath.Join(js.base, filename))

	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewDecoder(f).Decode(out)
}

func (js *JSONStore) UpsertCompetition(c *Competition) error {
	c.Updated = time.Now()

	return js.encodeFile(filepath.Join(competitionsDir, c.ID.String()+".json"), c)
}

func (js *JSONStore) ListCompetitions() ([]*Competition, error) {
	files, err := js.listFiles(filepath.Join(js.base, competitionsDir))

	if err != nil {
		return nil, err
	}

	var competitions []*Competition

	for _, file := range files {
		competition, err := js.FindCompetitionByID(file)

		if err == ErrCompetitionNotFound {
			continue
		} else if err != nil {
			return nil, err
		}

		competitions = append(competitions, competition)
	}

	return competitions, nil
}

func (js *JSONStore) FindCompetitionByID(uuid string) (*Competition, error) {
	var competition *Competition

	err := js.decodeFile(filepath.Join(competitionsDir, uuid+".json"), &competition)

	if os.IsNotExist(err) {
		return nil, ErrCompetitionNotFound
	} else if err != nil {
		return nil, err
	}

	if !competition.Deleted.IsZero() {
		return nil, ErrCompetitionNotFound
	}

	return competition, nil
}

func (js *JSONStore) DeleteCompetition(uuid string) error {
	competition, err := js.FindCompetitionByID(uuid)

	if err != nil {
		return err
	}

	competition.Deleted = time.Now()

	return js.UpsertCompetition(competition)
}

func (js *JSONStore) UpsertRawSession(s *RawSession) error {
	sessions, err := js.ListRawSessions()

	if err != nil {
		return err
	}

	for i, session := range sessions {
		if session.ID == s.ID {
			sessions[i] = s

			return js.encodeFile(rawSessionsFile, sessions)
		}
	}

	sessions = append(sessions, s)

	return js.encodeFile(rawSessionsFile, sessions)
}

func (js *JSONStore) ListRawSessions() ([]*RawSession, error) {
	var sessions []*RawSession

	err := js.decodeFile(rawSessionsFile, &sessions)

	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (js *JSONStore) UpsertRawResult(r *RawResult) error {
	results, err := js.ListRawResults()

	if err != nil {
		return err
	}

	for i, result := range results {
		if result.DriverID == r.DriverID && result.SessionID == r.SessionID {
			results[i] = r

			return js.encodeFile(rawResultsFile, results)
		}
	}

	results = append(results, r)

	return js.encodeFile(rawResultsFile, results)
}

func (js *JSONStore) ListRawResults() ([]*RawResult, error) {
	var results []*RawResult

	err := js.decodeFile(rawResultsFile, &results)

	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return results, nil
}
