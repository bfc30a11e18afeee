package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const configFilepath = "./cli/config/config.yaml"

type CLIConfig struct {
	LogLevel    string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	RawPageSize int    `yaml:"raw_page_size" envconfig:"RAW_PAGE_SIZE"`
}

func LoadConfig() (*CLIConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var cliConfig CLIConfig
	err = yaml.Unmarshal(configFile, &cliConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing cli config file: %s", err)
	}

	err = envconfig.Process("bikeshare", &cliConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing cli env overrides: %s", err)
	}

	return &cliConfig, nil
}
