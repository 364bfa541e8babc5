package studyclient

import "sync"

// Player is anything that can start and stop producing audio.
type Player interface {
	Play()
	Pause()
}

// PlaybackArbiter enforces at most one playing clip: playing a new clip
// pauses whatever was playing before.
type PlaybackArbiter struct {
	mu      sync.Mutex
	current Player
}

func NewPlaybackArbiter() *PlaybackArbiter {
	return &PlaybackArbiter{}
}

func (p *PlaybackArbiter) Play(player Player) {
	p.mu.Lock()
	previous := p.current
	p.current = player
	p.mu.Unlock()

	if previous != nil && previous != player {
		previous.Pause()
	}
	player.Play()
}

// Stop pauses the current clip, if any.
func (p *PlaybackArbiter) Stop() {
	p.mu.Lock()
	current := p.current
	p.current = nil
	p.mu.Unlock()

	if current != nil {
		current.Pause()
	}
}

// Current returns the clip that is playing, or nil.
func (p *PlaybackArbiter) Current() Player {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
