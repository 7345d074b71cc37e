package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioPlayTimeout caps how long a verdict sound may block the caller
	AudioPlayTimeout = 2 * time.Second

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.6
)

// Optimal Chime (rising two-note)
const (
	ChimeNote1Freq     = 987.77  // B5
	ChimeNote2Freq     = 1318.51 // E6
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 320 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 220 * time.Millisecond
)

// Near-Optimal Tone
const (
	NearToneFreq     = 440.0
	NearToneDuration = 180 * time.Millisecond
	NearToneVolume   = 0.5
)
