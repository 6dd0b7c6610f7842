package parameter

import "time"

// Sound effects
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the linear gain applied to every effect
	AudioMasterVolume = 0.3

	ReleaseToneHz       = 440.0
	ReleaseToneDuration = 40 * time.Millisecond

	ProgressToneHz       = 660.0
	ProgressToneDuration = 25 * time.Millisecond

	ClearToneHz       = 880.0
	ClearToneDuration = 120 * time.Millisecond

	FailToneHz       = 150.0
	FailToneDuration = 180 * time.Millisecond

	// ProgressSoundStep is the max-percent increase needed to trigger another progress tick
	ProgressSoundStep = 5
)
