package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/bitga/parameter"
)

// Config holds playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// DefaultConfig returns audio disabled at the default volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables
// Unparseable values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("BITGA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("BITGA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv("BITGA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
