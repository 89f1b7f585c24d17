package typewriter

import (
	"time"

	"hackpulse/internal/core/model"
)

// Mode is the phase of the typing cycle.
type Mode int

const (
	ModeTyping Mode = iota
	ModePaused
	ModeDeleting
)

func (mode Mode) String() string {
	switch mode {
	case ModeTyping:
		return "typing"
	case ModePaused:
		return "paused"
	case ModeDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// DefaultTiming returns the delays used by the hero tagline.
func DefaultTiming() model.TypingTiming {
	return model.TypingTiming{
		Normal:      100 * time.Millisecond,
		Hold:        5 * time.Second,
		Fast:        50 * time.Millisecond,
		InterPhrase: 6500 * time.Millisecond,
	}
}

// State is one position of the typing cycle. Length counts runes of the
// visible prefix of the current phrase.
type State struct {
	PhraseIndex int
	Length      int
	Mode        Mode
	Delay       time.Duration
}

// Machine holds the transition rules over a fixed phrase list.
type Machine struct {
	phrases [][]rune
	timing  model.TypingTiming
}

// NewMachine copies the phrases so later mutation by the caller has no effect.
func NewMachine(config model.TypewriterConfig) Machine {
	phrases := make([][]rune, len(config.Phrases))
	for i, phrase := range config.Phrases {
		phrases[i] = []rune(phrase)
	}
	timing := config.Timing
	defaults := DefaultTiming()
	if timing.Normal <= 0 {
		timing.Normal = defaults.Normal
	}
	if timing.Hold <= 0 {
		timing.Hold = defaults.Hold
	}
	if timing.Fast <= 0 {
		timing.Fast = defaults.Fast
	}
	if timing.InterPhrase <= 0 {
		timing.InterPhrase = defaults.InterPhrase
	}
	return Machine{phrases: phrases, timing: timing}
}

// Len returns the number of phrases.
func (machine Machine) Len() int {
	return len(machine.phrases)
}

// Timing returns the effective delays.
func (machine Machine) Timing() model.TypingTiming {
	return machine.timing
}

// Initial returns the state a fresh or reset engine starts from.
func (machine Machine) Initial() State {
	return State{Mode: ModeTyping, Delay: machine.timing.Normal}
}

// Step advances the cycle by one tick.
func (machine Machine) Step(state State) State {
	if len(machine.phrases) == 0 {
		return state
	}
	phrase := machine.phrases[state.PhraseIndex]

	switch state.Mode {
	case ModeTyping:
		if state.Length < len(phrase) {
			state.Length++
		}
		if state.Length >= len(phrase) {
			state.Length = len(phrase)
			state.Mode = ModePaused
			state.Delay = machine.timing.Hold
			return state
		}
		state.Delay = machine.timing.Normal
	case ModePaused:
		state.Mode = ModeDeleting
		state.Delay = machine.timing.Fast
	case ModeDeleting:
		if state.Length > 0 {
			state.Length--
		}
		if state.Length == 0 {
			state.PhraseIndex = (state.PhraseIndex + 1) % len(machine.phrases)
			state.Mode = ModeTyping
			state.Delay = machine.timing.InterPhrase
			return state
		}
		state.Delay = machine.timing.Fast
	}
	return state
}

// Visible returns the prefix shown for state.
func (machine Machine) Visible(state State) string {
	if len(machine.phrases) == 0 {
		return ""
	}
	return string(machine.phrases[state.PhraseIndex][:state.Length])
}

// Phrase returns the full phrase at index.
func (machine Machine) Phrase(index int) string {
	return string(machine.phrases[index])
}
