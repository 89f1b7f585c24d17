package model

import "time"

// CountdownConfig defines the deadline the hero countdown runs toward.
type CountdownConfig struct {
	Target       time.Time
	TickInterval time.Duration
}

// TypingTiming holds the per-mode delays of the typewriter.
type TypingTiming struct {
	Normal      time.Duration
	Hold        time.Duration
	Fast        time.Duration
	InterPhrase time.Duration
}

// TypewriterConfig contains the phrases cycled under the title.
type TypewriterConfig struct {
	Phrases []string
	Timing  TypingTiming
}

// EntranceConfig defines the staged reveal before typing may begin.
type EntranceConfig struct {
	LogoHold    time.Duration
	TypingDelay time.Duration
	CursorBlink time.Duration
}

// ParticleConfig contains backdrop tuning values.
type ParticleConfig struct {
	Stars         int
	CircuitLines  int
	FrameInterval time.Duration
	Seed          int64
}
