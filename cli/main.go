package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	cliConfig "bikeshare/cli/config"
	"bikeshare/loader"
	loaderConfig "bikeshare/loader/config"
	"bikeshare/presenter"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	cfg, err := cliConfig.LoadConfig()
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	datasetConfig, err := loaderConfig.LoadConfig()
	if err != nil {
		log.Fatalf("%s", err)
	}

	datasetLoader := loader.New(datasetConfig)
	resultPresenter := presenter.NewPresenter(os.Stdout, cfg.RawPageSize)

	session := NewSession(os.Stdin, os.Stdout, datasetLoader, resultPresenter)
	session.Run()

	log.Debugf("[stage: %s] finish main.go", sessionStr)
}
