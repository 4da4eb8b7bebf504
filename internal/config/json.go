package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the tool configuration from a JSON file. The file's own
// path is never taken from the file.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg StructuredConfig
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	cfg.JSONFilePath = ""

	return &cfg, nil
}
