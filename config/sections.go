package config

import "fmt"

// StationsConfig locates the station directory snapshot file.
type StationsConfig struct {
	// File is a JSON or YAML file carrying the station directory.
	File string `json:"file"`
}

// HistoryConfig defines settings for trip history storage.
type HistoryConfig struct {
	// Backend selects the store type: "memory" or "sqlite".
	Backend string `json:"backend"`
	// Path is the database location when the backend is sqlite.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *HistoryConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "memory"
	}
	if c.Path == "" {
		c.Path = "trips.db"
	}
}

// Validate checks mandatory fields.
func (c HistoryConfig) Validate() error {
	if c.Backend != "memory" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	return nil
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Listen string `json:"listen"`
}

// SetDefaults applies sane defaults.
func (c *HTTPConfig) SetDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
}
