package sharetelemetry

import (
	"os"
	"path/filepath"

	"github.com/etcd-io/bbolt"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Configuration struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Store      StoreConfig      `yaml:"store"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

type HTTPConfig struct {
	Hostname string `yaml:"hostname"`
	BaseURL  string `yaml:"base_url"`
}

type MonitoringConfig struct {
	Enabled bool `yaml:"enabled"`
}

type StoreConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

const (
	storeTypeBolt = "boltdb"
	storeTypeJSON = "json"
)

func (s *StoreConfig) BuildStore() (Store, error) {
	switch s.Type {
	case storeTypeBolt, "":
		if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
			return nil, errors.Wrap(err, "could not create store directory")
		}

		db, err := bbolt.Open(s.Path, 0644, nil)

		if err != nil {
			return nil, errors.Wrap(err, "could not open bolt store")
		}

		return NewBoltStore(db), nil
	case storeTypeJSON:
		return NewJSONStore(s.Path), nil
	default:
		return nil, errors.Errorf("sharetelemetry: unknown store type: %s", s.Type)
	}
}

func ReadConfig(location string) (*Configuration, error) {
	f, err := os.Open(location)

	if err != nil {
		return nil, errors.Wrapf(err, "could not open config file %s", location)
	}

	defer f.Close()

	config := &Configuration{}

	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, errors.Wrap(err, "could not decode config file")
	}

	return config, nil
}
