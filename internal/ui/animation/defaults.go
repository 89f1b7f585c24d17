package animation

import (
	"time"

	"hackpulse/internal/core/model"
)

// DefaultConfig returns the staged reveal used by the hero banner.
func DefaultConfig() model.EntranceConfig {
	return model.EntranceConfig{
		LogoHold:    2500 * time.Millisecond,
		TypingDelay: 2 * time.Second,
		CursorBlink: 530 * time.Millisecond,
	}
}
