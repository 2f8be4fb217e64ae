package main

import (
	"os"

	"bufread"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
)

type bufcatConfig struct {
	BufferSize int    `yaml:"bufferSize"`
	Preview    int    `yaml:"preview"`
	LogLevel   string `yaml:"logLevel"`
	JsonLog    bool   `yaml:"jsonLog"`
}

func defaultConfig() bufcatConfig {
	return bufcatConfig{
		BufferSize: bufread.DefaultBufferSize,
		Preview:    0,
		LogLevel:   "info",
		JsonLog:    false,
	}
}

func loadConfig(path string) bufcatConfig {
	config := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		log.Fatal(err)
	}

	return config
}
