package slideshow

import (
	"math/rand"
	"time"
)

// Mode selects how the next slide is chosen.
type Mode int

const (
	// ModeSequential steps through the scan order with wraparound.
	ModeSequential Mode = iota
	// ModeShuffledOnce permutes the sequence once at session start, then
	// behaves like ModeSequential.
	ModeShuffledOnce
	// ModeRandomEachTick jumps to a uniformly random slide on every tick.
	// Backward navigation is a no-op in this mode.
	ModeRandomEachTick
)

// Event is one discrete slideshow input, applied one at a time by the
// session's single owner.
type Event int

const (
	// EventTick is the automatic timer-driven advance.
	EventTick Event = iota
	// EventNext is a manual forward step.
	EventNext
	// EventPrevious is a manual backward step.
	EventPrevious
	// EventExit ends the session; no further events are applied.
	EventExit
)

// Session owns the slideshow state: the image sequence, the cursor into it,
// the display interval and the ordering mode. It is not safe for concurrent
// use; exactly one goroutine applies events.
type Session struct {
	sequence []string
	cursor   int
	interval time.Duration
	mode     Mode
	ended    bool
	rng      *rand.Rand
}

// NewSession builds a session over paths. The slice is copied; under
// ModeShuffledOnce the copy is permuted here and the order is fixed for the
// rest of the session.
func NewSession(paths []string, interval time.Duration, mode Mode) *Session {
	seq := make([]string, len(paths))
	copy(seq, paths)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if mode == ModeShuffledOnce {
		rng.Shuffle(len(seq), func(i, j int) {
			seq[i], seq[j] = seq[j], seq[i]
		})
	}

	return &Session{
		sequence: seq,
		interval: interval,
		mode:     mode,
		rng:      rng,
	}
}

// Apply performs one state transition and reports whether the shown slide
// may have changed. Events on an empty sequence or an ended session are
// no-ops.
func (s *Session) Apply(ev Event) bool {
	if s.ended {
		return false
	}
	if ev == EventExit {
		s.ended = true
		return false
	}
	n := len(s.sequence)
	if n == 0 {
		return false
	}

	switch ev {
	case EventTick:
		if s.mode == ModeRandomEachTick {
			s.cursor = s.rng.Intn(n)
			return true
		}
		s.cursor = (s.cursor + 1) % n
		return true
	case EventNext:
		s.cursor = (s.cursor + 1) % n
		return true
	case EventPrevious:
		// "Previous" has no defined meaning under random advancement.
		if s.mode == ModeRandomEachTick {
			return false
		}
		s.cursor = (s.cursor - 1 + n) % n
		return true
	}
	return false
}

// Current returns the path under the cursor. ok is false when the sequence
// is empty; an empty sequence never produces a slide.
func (s *Session) Current() (path string, ok bool) {
	if len(s.sequence) == 0 {
		return "", false
	}
	return s.sequence[s.cursor], true
}

// Cursor returns the current index. Only meaningful when Len() > 0.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the sequence length.
func (s *Session) Len() int { return len(s.sequence) }

// Interval returns the per-slide display interval.
func (s *Session) Interval() time.Duration { return s.interval }

// Ended reports whether EventExit has been applied.
func (s *Session) Ended() bool { return s.ended }
