package main

import (
	"flag"
	"net/http"

	sharetelemetry "github.com/riccardotornesello/sharetelemetry-results"

	"github.com/sirupsen/logrus"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "config.yml", "config file location")
	flag.Parse()
}

func main() {
	sharetelemetry.InitLogging()

	config, err := sharetelemetry.ReadConfig(configFile)

	if err != nil {
		logrus.Fatalf("could not open config file, err: %s", err)
	}

	store, err := config.Store.BuildStore()

	if err != nil {
		logrus.Fatalf("could not open store, err: %s", err)
	}

	if config.Monitoring.Enabled {
		sharetelemetry.InitMonitoring()
	}

	resolver := sharetelemetry.NewResolver(store)

	logrus.Infof("starting sharetelemetry results server on: %s", config.HTTP.Hostname)
	logrus.Fatal(http.ListenAndServe(config.HTTP.Hostname, resolver.ResolveRouter()))
}
