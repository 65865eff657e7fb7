package config

import (
	"strconv"
	"strings"
)

// Form field ids understood by ApplyFields.
const (
	FieldSeed           = "seed"
	FieldBlobSamples    = "blobSamples"
	FieldBlobStd        = "blobStd"
	FieldCircleSamples  = "circleSamples"
	FieldCircleNoise    = "circleNoise"
	FieldRingKernel     = "ringKernel"
	FieldRingC          = "ringC"
	FieldGamma          = "gamma"
	FieldGridResolution = "gridResolution"
	FieldShowCandidates = "showCandidates"
)

// ApplyFields parses form values into a copy of cfg. Missing or unparseable
// fields keep their previous value; the result is validated.
func ApplyFields(cfg Config, fields map[string]string) (Config, error) {
	assignFloat := func(id string, dst *float64) {
		if f, ok := parseFloatField(fields[id]); ok {
			*dst = f
		}
	}
	assignInt := func(id string, dst *int) {
		if i, ok := parseIntField(fields[id]); ok {
			*dst = i
		}
	}
	assignBool := func(id string, dst *bool) {
		if b, ok := parseBoolLoose(fields[id]); ok {
			*dst = b
		}
	}
	if s, err := strconv.ParseUint(strings.TrimSpace(fields[FieldSeed]), 10, 64); err == nil {
		cfg.Seed = s
	}
	assignInt(FieldBlobSamples, &cfg.BlobSamples)
	assignFloat(FieldBlobStd, &cfg.BlobStd)
	assignInt(FieldCircleSamples, &cfg.CircleSamples)
	assignFloat(FieldCircleNoise, &cfg.CircleNoise)
	assignFloat(FieldRingC, &cfg.RingC)
	assignFloat(FieldGamma, &cfg.Gamma)
	assignInt(FieldGridResolution, &cfg.GridResolution)
	assignBool(FieldShowCandidates, &cfg.ShowCandidates)
	if k := strings.ToLower(strings.TrimSpace(fields[FieldRingKernel])); k != "" {
		cfg.RingKernel = k
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
