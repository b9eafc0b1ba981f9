package config

import "fmt"

// ReportConfig controls how the finished plan is rendered.
type ReportConfig struct {
	// Format is one of "text", "json", "csv".
	Format string `json:"format"`
	// Stats appends per-leg cost statistics to the report.
	Stats bool `json:"stats"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate checks the format is known.
func (c ReportConfig) Validate() error {
	switch c.Format {
	case "text", "json", "csv":
		return nil
	}
	return fmt.Errorf("unknown report format %q", c.Format)
}
