package typewriter

import (
	"strings"
	"testing"
	"time"

	"hackpulse/internal/core/model"
)

var phrases = []string{
	"Code. Create. Conquer.",
	"Innovate. Collaborate. Win.",
	"Design. Develop. Disrupt.",
	"Build. Break. Rebuild.",
}

func newTestMachine(list ...string) Machine {
	return NewMachine(model.TypewriterConfig{Phrases: list, Timing: DefaultTiming()})
}

func TestStepTypesPausesDeletes(t *testing.T) {
	machine := newTestMachine("Hi")
	timing := DefaultTiming()
	state := machine.Initial()

	steps := []struct {
		text  string
		mode  Mode
		delay time.Duration
		index int
	}{
		{"H", ModeTyping, timing.Normal, 0},
		{"Hi", ModePaused, timing.Hold, 0},
		{"Hi", ModeDeleting, timing.Fast, 0},
		{"H", ModeDeleting, timing.Fast, 0},
		{"", ModeTyping, timing.InterPhrase, 0},
		{"H", ModeTyping, timing.Normal, 0},
	}

	for i, step := range steps {
		state = machine.Step(state)
		if got := machine.Visible(state); got != step.text {
			t.Fatalf("step %d: text = %q, want %q", i, got, step.text)
		}
		if state.Mode != step.mode {
			t.Fatalf("step %d: mode = %v, want %v", i, state.Mode, step.mode)
		}
		if state.Delay != step.delay {
			t.Fatalf("step %d: delay = %v, want %v", i, state.Delay, step.delay)
		}
		if state.PhraseIndex != step.index {
			t.Fatalf("step %d: index = %d, want %d", i, state.PhraseIndex, step.index)
		}
	}
}

func TestPrefixInvariantHolds(t *testing.T) {
	machine := newTestMachine(phrases...)
	state := machine.Initial()

	for i := 0; i < 2000; i++ {
		state = machine.Step(state)
		phrase := machine.Phrase(state.PhraseIndex)
		visible := machine.Visible(state)
		if !strings.HasPrefix(phrase, visible) {
			t.Fatalf("tick %d: %q is not a prefix of %q", i, visible, phrase)
		}
		if state.Length < 0 || state.Length > len([]rune(phrase)) {
			t.Fatalf("tick %d: length %d out of range for %q", i, state.Length, phrase)
		}
	}
}

func TestCycleClosure(t *testing.T) {
	machine := newTestMachine(phrases...)
	state := machine.Initial()

	cycles := 0
	for tick := 0; cycles < len(phrases); tick++ {
		if tick > 10000 {
			t.Fatal("cycle did not close")
		}
		previous := state
		state = machine.Step(state)
		if previous.Mode == ModeDeleting && state.Mode == ModeTyping {
			cycles++
		}
	}

	if state.PhraseIndex != 0 || state.Length != 0 || state.Mode != ModeTyping {
		t.Errorf("after %d cycles state = %+v, want first phrase empty typing", cycles, state)
	}
}

func TestEmptyPhrasePausesImmediately(t *testing.T) {
	machine := newTestMachine("")
	state := machine.Step(machine.Initial())

	if state.Mode != ModePaused {
		t.Fatalf("mode = %v, want paused", state.Mode)
	}
	if state.Length != 0 || machine.Visible(state) != "" {
		t.Fatalf("expected nothing typed, got %q", machine.Visible(state))
	}

	state = machine.Step(state)
	state = machine.Step(state)
	if state.Mode != ModeTyping || state.PhraseIndex != 0 {
		t.Errorf("expected the single empty phrase to restart, got %+v", state)
	}
}

func TestSinglePhraseRestarts(t *testing.T) {
	machine := newTestMachine("ab")
	state := machine.Initial()
	for i := 0; i < 5; i++ {
		state = machine.Step(state)
	}
	if state.Mode != ModeTyping || state.PhraseIndex != 0 || state.Length != 0 {
		t.Fatalf("expected restart of the same phrase, got %+v", state)
	}
	state = machine.Step(state)
	if machine.Visible(state) != "a" {
		t.Errorf("expected retype to begin, got %q", machine.Visible(state))
	}
}

func TestMultibyteRunes(t *testing.T) {
	machine := newTestMachine("₹50k")
	state := machine.Step(machine.Initial())
	if got := machine.Visible(state); got != "₹" {
		t.Errorf("Visible() = %q, want %q", got, "₹")
	}
}

func TestMachineCopiesPhrases(t *testing.T) {
	list := []string{"one", "two"}
	machine := newTestMachine(list...)
	list[0] = "changed"
	if machine.Phrase(0) != "one" {
		t.Errorf("machine phrase mutated to %q", machine.Phrase(0))
	}
}

func TestNoPhrasesIsInert(t *testing.T) {
	machine := newTestMachine()
	state := machine.Initial()
	if next := machine.Step(state); next != state {
		t.Errorf("expected no transition without phrases, got %+v", next)
	}
	if machine.Visible(state) != "" {
		t.Error("expected empty text without phrases")
	}
}
