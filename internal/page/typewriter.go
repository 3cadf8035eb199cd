package page

import "time"

const (
	TypeDelay   = 55 * time.Millisecond
	DeleteDelay = 25 * time.Millisecond
	HoldDelay   = 2200 * time.Millisecond
	PauseDelay  = 350 * time.Millisecond
)

// DefaultPhrases are cycled by the hero typewriter.
var DefaultPhrases = []string{
	"Digital Marketing Analyst",
	"AI & Data Science Enthusiast",
	"Python Developer",
	"Data-Driven Strategist",
}

// Typewriter types a phrase one character at a time, holds it, deletes it and
// moves on to the next phrase.
type Typewriter struct {
	phrases  [][]rune
	phrase   int
	chars    int
	deleting bool
	holding  bool
	wait     time.Duration
}

// NewTypewriter starts typing the first phrase; its first character is visible
// immediately.
func NewTypewriter(phrases []string) *Typewriter {
	t := &Typewriter{}
	for _, p := range phrases {
		t.phrases = append(t.phrases, []rune(p))
	}
	if len(t.phrases) > 0 {
		t.wait = t.tick()
	}
	return t
}

// Advance moves the animation forward by dt.
func (t *Typewriter) Advance(dt time.Duration) {
	if len(t.phrases) == 0 {
		return
	}
	t.wait -= dt
	for t.wait <= 0 {
		t.wait += t.tick()
	}
}

// Text is the currently visible part of the phrase.
func (t *Typewriter) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return string(t.phrases[t.phrase][:t.chars])
}

func (t *Typewriter) Phrase() int { return t.phrase }

func (t *Typewriter) Deleting() bool { return t.deleting }

func (t *Typewriter) tick() time.Duration {
	if t.holding {
		t.holding = false
		t.deleting = true
	}
	current := t.phrases[t.phrase]
	if !t.deleting {
		if t.chars < len(current) {
			t.chars++
		}
		if t.chars >= len(current) {
			t.holding = true
			return HoldDelay
		}
		return TypeDelay
	}

	if t.chars > 0 {
		t.chars--
	}
	if t.chars == 0 {
		t.deleting = false
		t.phrase = (t.phrase + 1) % len(t.phrases)
		return PauseDelay
	}
	return DeleteDelay
}
