package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample evaluates one wave at phase in [0,1)
func (w WaveType) sample(phase float64, noise *vmath.FastRand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return float64(noise.Float32Range(-1, 1))
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone is a fixed-length wave whose frequency may glide from start to end
type tone struct {
	wave       WaveType
	start, end float64
	phase      float64
	length     int
	pos        int
	rate       beep.SampleRate
	noise      *vmath.FastRand
}

// NewOscillator creates a constant-pitch wave of the given duration
// Noise is seeded from the frequency so cues sound the same every run
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:   wave,
		start:  freq,
		end:    freq,
		length: rate.N(duration),
		rate:   rate,
		noise:  vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

// NewSweep creates a sine gliding linearly from start to end Hz
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{wave: WaveSine, start: start, end: end, length: rate.N(duration), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if t.pos >= t.length {
			return n, n > 0
		}
		v := t.wave.sample(t.phase, t.noise)
		samples[n] = [2]float64{v, v}

		progress := float64(t.pos) / float64(t.length)
		freq := t.start + (t.end-t.start)*progress
		_, t.phase = math.Modf(t.phase + freq/float64(t.rate))
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// envelope ramps gain up over attack and down over the final release samples
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with linear attack and release, cutting it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  min(rate.N(release), total-att),
		total:    total,
	}
}

func (e *envelope) gain() float64 {
	g := 1.0
	if e.pos < e.attack {
		g = float64(e.pos) / float64(e.attack)
	}
	if left := e.total - e.pos; e.release > 0 && left <= e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if room := e.total - e.pos; len(samples) > room {
		samples = samples[:room]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain on beep's log2 scale; vol <= 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHornSound generates a low two-tone ship horn
func CreateHornSound(rate beep.SampleRate, volume float64) beep.Streamer {
	low := NewOscillator(110.0, constants.HornSoundDuration, WaveSaw, rate)
	fifth := NewOscillator(165.0, constants.HornSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(low, 0.6), newVolume(fifth, 0.25))
	shaped := NewEnvelope(mixed, constants.HornSoundDuration, constants.HornSoundAttack, constants.HornSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateWhaleSound generates a slow falling moan
func CreateWhaleSound(rate beep.SampleRate, volume float64) beep.Streamer {
	glide := NewSweep(520.0, 180.0, constants.WhaleSoundDuration, rate)
	shaped := NewEnvelope(glide, constants.WhaleSoundDuration, constants.WhaleSoundAttack, constants.WhaleSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateSharkSound generates a short noisy sting
func CreateSharkSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewOscillator(0, constants.SharkSoundDuration, WaveNoise, rate)
	hum := NewOscillator(70.0, constants.SharkSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(noise, 0.4), newVolume(hum, 0.5))
	shaped := NewEnvelope(mixed, constants.SharkSoundDuration, constants.SharkSoundAttack, constants.SharkSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateSchoolSound generates a quick rising arpeggio
func CreateSchoolSound(rate beep.SampleRate, volume float64) beep.Streamer {
	step := constants.SchoolSoundDuration / 3
	var notes []beep.Streamer
	for _, freq := range []float64{659.25, 783.99, 987.77} {
		osc := NewOscillator(freq, step, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, step, constants.SchoolSoundAttack, constants.SchoolSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), volume)
}

// GetCueSound returns the streamer for a cue, nil for an unknown cue
func GetCueSound(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch cue {
	case CueShipHorn:
		return CreateHornSound(rate, volume)
	case CueSharkSting:
		return CreateSharkSound(rate, volume)
	case CueWhaleCall:
		return CreateWhaleSound(rate, volume)
	case CueSchool:
		return CreateSchoolSound(rate, volume)
	default:
		return nil
	}
}
