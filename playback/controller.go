// Package playback wraps one audio artifact in an explicit state machine:
// Loading -> Ready -> Playing <-> Paused -> Ended, with replay from Ended.
// All transitions happen in response to discrete events (media ready, time
// advance, end of stream, user action) and are serialized; no rendering
// surface is involved.
package playback

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/sanitize"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateEnded   State = "ended"
)

// MediaPlayer is the underlying audio sink. Play may refuse, e.g. an autoplay
// policy that requires a user gesture.
type MediaPlayer interface {
	Play() error
	Pause()
	SetPosition(seconds float64)
}

// Snapshot is the observable playback state consumed for rendering.
type Snapshot struct {
	IsPlaying   bool
	CurrentTime float64
	Duration    float64
	IsLoading   bool
}

// Controller is scoped to exactly one artifact. A new artifact needs a new
// controller; no state is shared across artifacts.
type Controller struct {
	mu       sync.Mutex
	state    State
	duration float64
	current  float64
	autoPlay bool
	player   MediaPlayer
	artifact *domain.AudioArtifact
}

func NewController(artifact *domain.AudioArtifact, player MediaPlayer, autoPlay bool) *Controller {
	return &Controller{
		state:    StateLoading,
		autoPlay: autoPlay,
		player:   player,
		artifact: artifact,
	}
}

// HandleLoaded marks the media ready once its duration is known. Requested
// auto-play is attempted immediately; refusal by the player leaves the
// controller in Ready without surfacing an error.
func (c *Controller) HandleLoaded(durationSeconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoading {
		return
	}

	c.duration = durationSeconds
	c.state = StateReady

	if c.autoPlay {
		if err := c.player.Play(); err == nil {
			c.state = StatePlaying
		}
	}
}

// TogglePlayPause pauses when playing and plays when paused or ready. It is a
// no-op while loading and after the stream ended (replay needs an explicit
// seek).
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StatePlaying:
		c.player.Pause()
		c.state = StatePaused
	case StatePaused, StateReady:
		if err := c.player.Play(); err == nil {
			c.state = StatePlaying
		}
	}
}

// Seek moves to targetFraction of the duration, clamped to [0, duration].
// Valid only once the duration is known. Seeking an ended stream rewinds it
// into Paused so a subsequent toggle can play again.
func (c *Controller) Seek(targetFraction float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateLoading {
		return fmt.Errorf("cannot seek before media duration is known")
	}

	target := targetFraction * c.duration
	if target < 0 {
		target = 0
	}
	if target > c.duration {
		target = c.duration
	}

	c.current = target
	c.player.SetPosition(target)

	if c.state == StateEnded {
		c.state = StatePaused
	}
	return nil
}

// HandleTick records the latest known position while playing. There is no
// backpressure; the controller simply reflects what the media reported last.
func (c *Controller) HandleTick(positionSeconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePlaying {
		return
	}
	if positionSeconds > c.duration {
		positionSeconds = c.duration
	}
	c.current = positionSeconds
}

// HandleEnded reacts to natural completion of the stream.
func (c *Controller) HandleEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateReady, StatePlaying, StatePaused:
		c.state = StateEnded
		c.current = 0
	}
}

// Replay restarts an ended stream: seek to the start, then play.
func (c *Controller) Replay() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEnded {
		return
	}

	c.current = 0
	c.player.SetPosition(0)
	if err := c.player.Play(); err == nil {
		c.state = StatePlaying
	} else {
		c.state = StatePaused
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		IsPlaying:   c.state == StatePlaying,
		CurrentTime: c.current,
		Duration:    c.duration,
		IsLoading:   c.state == StateLoading,
	}
}

// Download exposes the artifact as a file-like resource named from a
// sanitized version of the title. Pure export, no state transition.
func (c *Controller) Download(title string) (string, io.Reader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.artifact == nil {
		return "", nil, fmt.Errorf("no audio artifact attached")
	}

	filename := sanitize.Filename(title) + ".mp3"
	return filename, bytes.NewReader(c.artifact.Data), nil
}
