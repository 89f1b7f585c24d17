package chime

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays the completion chime on the default audio device. The device
// is opened on first use.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
	start       func(beep.SampleRate, beep.Streamer) error
}

// NewPlayer creates a player. A disabled player never touches the device.
func NewPlayer(enabled bool) *Player {
	return &Player{
		enabled: enabled,
		mixer:   &beep.Mixer{},
		start:   startSpeaker,
	}
}

func startSpeaker(rate beep.SampleRate, streamer beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(streamer)
	return nil
}

// SetEnabled toggles playback.
func (player *Player) SetEnabled(enabled bool) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.enabled = enabled
}

// Play queues the chime. Failing to open the device is returned and retried
// on the next call.
func (player *Player) Play() error {
	player.mu.Lock()
	defer player.mu.Unlock()

	if !player.enabled {
		return nil
	}
	if !player.initialized {
		if err := player.start(sampleRate, player.mixer); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		player.initialized = true
	}

	speaker.Lock()
	player.mixer.Add(Fanfare(sampleRate))
	speaker.Unlock()
	return nil
}

// Close silences anything still playing.
func (player *Player) Close() {
	player.mu.Lock()
	defer player.mu.Unlock()

	if !player.initialized {
		return
	}
	speaker.Lock()
	player.mixer.Clear()
	speaker.Unlock()
}
