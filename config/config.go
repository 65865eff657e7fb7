package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the deck and the app window.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool   `json:"debug"`
	Seed  uint64 `json:"seed"`

	// Separable blobs
	BlobSamples      int          `json:"blob_samples"`
	BlobCenters      int          `json:"blob_centers"`
	BlobStd          float64      `json:"blob_std"`
	BlobCenterPoints [][2]float64 `json:"blob_center_points"` // empty: random centers in [-10, 10]

	// Concentric rings
	CircleSamples int     `json:"circle_samples"`
	CircleFactor  float64 `json:"circle_factor"`
	CircleNoise   float64 `json:"circle_noise"`

	// Classifiers
	SeparableC float64 `json:"separable_c"`
	RingC      float64 `json:"ring_c"`
	RingKernel string  `json:"ring_kernel"`
	Gamma      float64 `json:"gamma"`
	Tolerance  float64 `json:"tolerance"`
	MaxIter    int     `json:"max_iter"`

	// Rendering
	GridResolution int     `json:"grid_resolution"`
	PlotWidth      int     `json:"plot_width"`
	PlotHeight     int     `json:"plot_height"`
	Elev           float64 `json:"elev"`
	Azim           float64 `json:"azim"`
	ShowCandidates bool    `json:"show_candidates"`

	// Window
	WindowWidth        int  `json:"window_width"`
	WindowHeight       int  `json:"window_height"`
	AutoAdvanceSeconds int  `json:"auto_advance_seconds"` // 0 disables
	DarkMode           bool `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults.
// The blob centers are where uniform draws on [-10, 10] put them for the
// classic seed-0 demo.
func DefaultConfig() *Config {
	return &Config{
		Debug:              false,
		Seed:               0,
		BlobSamples:        50,
		BlobCenters:        2,
		BlobStd:            0.60,
		BlobCenterPoints:   [][2]float64{{0.976, 4.304}, {2.055, 0.898}},
		CircleSamples:      100,
		CircleFactor:       0.1,
		CircleNoise:        0.1,
		SeparableC:         1e10,
		RingC:              1,
		RingKernel:         "linear",
		Gamma:              1,
		Tolerance:          1e-3,
		MaxIter:            100000,
		GridResolution:     30,
		PlotWidth:          640,
		PlotHeight:         480,
		Elev:               30,
		Azim:               30,
		ShowCandidates:     false,
		WindowWidth:        900,
		WindowHeight:       780,
		AutoAdvanceSeconds: 0,
		DarkMode:           false,
	}
}

// Caps on rebuild cost: the Gram matrix grows with samples², the decision
// grid with resolution².
const (
	MaxSamples        = 1000
	MaxGridResolution = 200
)

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.BlobSamples < 2 {
		c.BlobSamples = 50
	}
	if c.BlobSamples > MaxSamples {
		c.BlobSamples = MaxSamples
	}
	// The classifiers are binary.
	c.BlobCenters = 2
	switch {
	case len(c.BlobCenterPoints) > 2:
		c.BlobCenterPoints = c.BlobCenterPoints[:2]
	case len(c.BlobCenterPoints) == 1:
		c.BlobCenterPoints = nil
	}
	if c.BlobStd <= 0 {
		c.BlobStd = 0.60
	}
	if c.CircleSamples < 2 {
		c.CircleSamples = 100
	}
	if c.CircleSamples > MaxSamples {
		c.CircleSamples = MaxSamples
	}
	if c.CircleFactor <= 0 || c.CircleFactor >= 1 {
		c.CircleFactor = 0.1
	}
	if c.CircleNoise < 0 {
		c.CircleNoise = 0
	}
	if c.SeparableC <= 0 {
		c.SeparableC = 1e10
	}
	if c.RingC <= 0 {
		c.RingC = 1
	}
	if c.RingKernel == "" {
		c.RingKernel = "linear"
	}
	if c.Gamma <= 0 {
		c.Gamma = 1
	}
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-3
	}
	if c.MaxIter <= 0 {
		c.MaxIter = 100000
	}
	if c.GridResolution < 2 {
		c.GridResolution = 30
	}
	if c.GridResolution > MaxGridResolution {
		c.GridResolution = MaxGridResolution
	}
	if c.PlotWidth < 100 {
		c.PlotWidth = 640
	}
	if c.PlotHeight < 100 {
		c.PlotHeight = 480
	}
	if c.Elev < -90 || c.Elev > 90 {
		c.Elev = 30
	}
	if c.Azim < -180 || c.Azim > 180 {
		c.Azim = 30
	}
	if c.WindowWidth < 400 {
		c.WindowWidth = 900
	}
	if c.WindowHeight < 300 {
		c.WindowHeight = 780
	}
	if c.AutoAdvanceSeconds < 0 {
		c.AutoAdvanceSeconds = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
