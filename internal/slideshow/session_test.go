package slideshow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronjoe/GeoFrame/internal/photo"
)

func paths(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("/photos/%03d.jpg", i)
	}
	return out
}

func TestWraparoundLaw(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		s := NewSession(paths(n), time.Second, ModeSequential)
		start := s.Cursor()
		for i := 0; i < n; i++ {
			assert.True(t, s.Apply(EventNext))
		}
		assert.Equal(t, start, s.Cursor(), "length %d", n)
	}
}

func TestForwardBackwardIdentity(t *testing.T) {
	s := NewSession(paths(5), time.Second, ModeSequential)
	for start := 0; start < 5; start++ {
		before := s.Cursor()
		s.Apply(EventNext)
		s.Apply(EventPrevious)
		assert.Equal(t, before, s.Cursor())
		s.Apply(EventNext) // try every starting position
	}
}

func TestBackwardWrapsToEnd(t *testing.T) {
	s := NewSession(paths(4), time.Second, ModeSequential)
	require.Equal(t, 0, s.Cursor())
	s.Apply(EventPrevious)
	assert.Equal(t, 3, s.Cursor())
}

func TestTickAdvancesSequential(t *testing.T) {
	s := NewSession(paths(3), time.Second, ModeSequential)
	s.Apply(EventTick)
	assert.Equal(t, 1, s.Cursor())
	s.Apply(EventTick)
	assert.Equal(t, 2, s.Cursor())
	s.Apply(EventTick)
	assert.Equal(t, 0, s.Cursor())
}

func TestEmptySequenceNoops(t *testing.T) {
	s := NewSession(nil, time.Second, ModeSequential)
	for _, ev := range []Event{EventTick, EventNext, EventPrevious} {
		assert.False(t, s.Apply(ev))
	}
	_, ok := s.Current()
	assert.False(t, ok, "an empty sequence never produces a slide")
}

func TestExitIsTerminal(t *testing.T) {
	s := NewSession(paths(3), time.Second, ModeSequential)
	s.Apply(EventExit)
	assert.True(t, s.Ended())

	// No further events are processed.
	assert.False(t, s.Apply(EventNext))
	assert.Equal(t, 0, s.Cursor())
}

func TestRandomModeSingleImage(t *testing.T) {
	s := NewSession(paths(1), time.Second, ModeRandomEachTick)
	for i := 0; i < 20; i++ {
		assert.True(t, s.Apply(EventTick))
		path, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/photos/000.jpg", path)
	}
}

func TestRandomModeStaysInRange(t *testing.T) {
	s := NewSession(paths(5), time.Second, ModeRandomEachTick)
	for i := 0; i < 100; i++ {
		s.Apply(EventTick)
		assert.GreaterOrEqual(t, s.Cursor(), 0)
		assert.Less(t, s.Cursor(), 5)
	}
}

func TestRandomModePreviousIsNoop(t *testing.T) {
	s := NewSession(paths(5), time.Second, ModeRandomEachTick)
	s.Apply(EventTick)
	before := s.Cursor()
	assert.False(t, s.Apply(EventPrevious))
	assert.Equal(t, before, s.Cursor())
}

func TestShuffledOncePreservesContents(t *testing.T) {
	input := paths(20)
	s := NewSession(input, time.Second, ModeShuffledOnce)

	var seen []string
	for i := 0; i < s.Len(); i++ {
		path, ok := s.Current()
		require.True(t, ok)
		seen = append(seen, path)
		s.Apply(EventNext)
	}
	assert.ElementsMatch(t, input, seen)

	// The permuted order is fixed for the session: a full cycle lands back
	// on the same slide.
	first, _ := s.Current()
	for i := 0; i < s.Len(); i++ {
		s.Apply(EventNext)
	}
	again, _ := s.Current()
	assert.Equal(t, first, again)
}

func TestSessionDoesNotMutateInput(t *testing.T) {
	input := paths(10)
	want := append([]string{}, input...)
	NewSession(input, time.Second, ModeShuffledOnce)
	assert.Equal(t, want, input)
}

// TestAnnotationSequence walks a three-image sequential session through the
// cache-wrapped pipeline: two slides with a capture date, one with no
// metadata, then wraparound.
func TestAnnotationSequence(t *testing.T) {
	records := map[string]photo.Record{
		"/photos/000.jpg": {TakenTime: time.Date(2021, 6, 1, 9, 0, 0, 0, time.UTC)},
		"/photos/001.jpg": {TakenTime: time.Date(2021, 6, 1, 17, 0, 0, 0, time.UTC)},
		"/photos/002.jpg": {},
	}
	computes := 0
	compute := func(ctx context.Context, path string) photo.Record {
		computes++
		return records[path]
	}

	cache := photo.NewCache()
	s := NewSession(paths(3), 5*time.Second, ModeSequential)

	annotate := func() string {
		path, ok := s.Current()
		require.True(t, ok)
		return cache.GetOrCompute(context.Background(), path, compute).DisplayString()
	}

	want := []string{"2021-06-01", "2021-06-01", ""}
	for i, expected := range want {
		assert.Equal(t, expected, annotate(), "slide %d", i)
		s.Apply(EventTick)
	}

	// Wrapped back to the first slide; its record comes from the cache.
	assert.Equal(t, "2021-06-01", annotate())
	assert.Equal(t, 3, computes)
}
