package main

import (
	"fmt"

	"github.com/horgh/config"
)

// Config holds the server's configuration.
type Config struct {
	ListenHost  string
	ListenPort  string
	ServerName  string
	Version     string
	CreatedDate string
	MOTD        string

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string
}

// loadConfig reads and validates the key=value configuration file at path.
func loadConfig(path string) (Config, error) {
	configMap, err := config.ReadStringMap(path)
	if err != nil {
		return Config{}, err
	}

	requiredKeys := []string{
		"listen-host",
		"listen-port",
		"server-name",
		"version",
		"created-date",
		"motd",
	}

	for _, key := range requiredKeys {
		v, exists := configMap[key]
		if !exists {
			return Config{}, fmt.Errorf("missing required key: %s", key)
		}
		if len(v) == 0 {
			return Config{}, fmt.Errorf("configuration value is blank: %s", key)
		}
	}

	c := Config{
		ListenHost:  configMap["listen-host"],
		ListenPort:  configMap["listen-port"],
		ServerName:  configMap["server-name"],
		Version:     configMap["version"],
		CreatedDate: configMap["created-date"],
		MOTD:        configMap["motd"],
		LogLevel:    configMap["log-level"],
		LogFormat:   configMap["log-format"],
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	return c, nil
}
