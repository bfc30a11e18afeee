package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const configFilepath = "./loader/config/config.yaml"

// datasetColumns contains the header name of each field to analyze
type datasetColumns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	TripDuration string `yaml:"trip_duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

type LoaderConfig struct {
	DataDir    string            `yaml:"data_dir" envconfig:"DATA_DIR"`
	CityFiles  map[string]string `yaml:"city_files"`
	Columns    datasetColumns    `yaml:"columns"`
	TimeLayout string            `yaml:"time_layout"`
}

func LoadConfig() (*LoaderConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var loaderConfig LoaderConfig
	err = yaml.Unmarshal(configFile, &loaderConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing loader config file: %s", err)
	}

	err = envconfig.Process("bikeshare", &loaderConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing loader env overrides: %s", err)
	}

	return &loaderConfig, nil
}
