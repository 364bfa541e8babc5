package studyclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePlayer struct {
	playing bool
	pauses  int
}

func (f *fakePlayer) Play()  { f.playing = true }
func (f *fakePlayer) Pause() { f.playing = false; f.pauses++ }

func TestPlaybackArbiterSingleClip(t *testing.T) {
	arbiter := NewPlaybackArbiter()
	a := &fakePlayer{}
	b := &fakePlayer{}

	arbiter.Play(a)
	assert.True(t, a.playing)

	arbiter.Play(b)
	assert.False(t, a.playing, "starting B must pause A")
	assert.True(t, b.playing)
	assert.Equal(t, b, arbiter.Current())

	// Replaying the current clip does not pause it.
	arbiter.Play(b)
	assert.True(t, b.playing)
	assert.Equal(t, 0, b.pauses)

	arbiter.Stop()
	assert.False(t, b.playing)
	assert.Nil(t, arbiter.Current())
}
