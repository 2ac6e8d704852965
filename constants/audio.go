package constants

import "time"

// Audio output
const (
	AudioSampleRate = 44100
	AudioBuffer     = 100 * time.Millisecond
)

// Ship horn timing
const (
	HornSoundDuration = 900 * time.Millisecond
	HornSoundAttack   = 60 * time.Millisecond
	HornSoundRelease  = 400 * time.Millisecond
)

// Whale call timing
const (
	WhaleSoundDuration = 1400 * time.Millisecond
	WhaleSoundAttack   = 300 * time.Millisecond
	WhaleSoundRelease  = 700 * time.Millisecond
)

// Shark sting timing
const (
	SharkSoundDuration = 250 * time.Millisecond
	SharkSoundAttack   = 5 * time.Millisecond
	SharkSoundRelease  = 120 * time.Millisecond
)

// School shimmer timing
const (
	SchoolSoundDuration = 350 * time.Millisecond
	SchoolSoundAttack   = 20 * time.Millisecond
	SchoolSoundRelease  = 60 * time.Millisecond // per note
)
