// Package bundle assembles LV2 plugin bundles from impulse-response data.
package bundle

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// Namespace is the URI prefix under which generated plugins are published.
const Namespace = "http://moddevices.com/plugins/mod-devel/"

// ErrInvalidName marks plugin names that are not valid bare identifiers.
var ErrInvalidName = errors.New("plugin name is not a valid identifier")

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds the plugin-level knobs for one generator run.
type Config struct {
	Name        string // bare identifier, used in file names and the plugin URI
	Title       string // human-readable display title
	OutputDir   string // directory the .lv2 bundle is created under
	SampleLimit int    // max FIR coefficients per impulse response, 0 = unlimited
}

// Validate checks the config before any filesystem access happens.
func (c *Config) Validate() error {
	if !identRE.MatchString(c.Name) {
		return fmt.Errorf("%q: %w", c.Name, ErrInvalidName)
	}
	if c.SampleLimit < 0 {
		return fmt.Errorf("sample limit must be >= 0, got %d", c.SampleLimit)
	}
	return nil
}

// URI returns the full plugin URI.
func (c *Config) URI() string {
	return Namespace + c.Name
}

// BundleDir returns the target bundle directory for this run.
func (c *Config) BundleDir() string {
	return filepath.Join(c.OutputDir, c.Name+".lv2")
}
