package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	noteDuration = 180 * time.Millisecond
	lastDuration = 600 * time.Millisecond
	noteAttack   = 8 * time.Millisecond
	noteRelease  = 120 * time.Millisecond
	lastRelease  = 450 * time.Millisecond
	masterVolume = 0.6
)

// Rising C major arpeggio, resolved an octave up.
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// tone is a sine oscillator limited to a number of samples.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newTone(freq float64, duration time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(duration), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		value := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = value
		samples[i][1] = value
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a streamer in over attack and out over the final release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(streamer beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: streamer,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			gain = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Fanfare returns the completion chime: a short rising arpeggio whose last
// note rings out with an octave overtone.
func Fanfare(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	last := len(fanfareNotes) - 1
	for _, freq := range fanfareNotes[:last] {
		notes = append(notes, newEnvelope(newTone(freq, noteDuration, rate), noteDuration, noteAttack, noteRelease, rate))
	}

	root := fanfareNotes[last]
	ring := beep.Mix(
		withVolume(newEnvelope(newTone(root, lastDuration, rate), lastDuration, noteAttack, lastRelease, rate), 0.7),
		withVolume(newEnvelope(newTone(root*2, lastDuration, rate), lastDuration, noteAttack, lastRelease/2, rate), 0.3),
	)
	notes = append(notes, ring)

	return withVolume(beep.Seq(notes...), masterVolume)
}

// Length returns the number of samples Fanfare produces at rate.
func Length(rate beep.SampleRate) int {
	return rate.N(noteDuration)*(len(fanfareNotes)-1) + rate.N(lastDuration)
}

func withVolume(streamer beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: streamer, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(gain)}
}
