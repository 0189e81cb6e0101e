package playback

import (
	"errors"
	"io"
	"testing"

	"github.com/viveknaskar/ConfessBot/domain"
)

type fakePlayer struct {
	refusePlay bool
	playCalls  int
	pauseCalls int
	positions  []float64
}

func (p *fakePlayer) Play() error {
	p.playCalls++
	if p.refusePlay {
		return errors.New("user gesture required")
	}
	return nil
}

func (p *fakePlayer) Pause() {
	p.pauseCalls++
}

func (p *fakePlayer) SetPosition(seconds float64) {
	p.positions = append(p.positions, seconds)
}

func testArtifact() *domain.AudioArtifact {
	return &domain.AudioArtifact{
		ID:              "artifact-1",
		MimeType:        "audio/mpeg",
		Data:            []byte("mp3-bytes"),
		DurationSeconds: 100,
	}
}

func TestController_AutoPlayOnLoad(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(testArtifact(), player, true)

	if !controller.Snapshot().IsLoading {
		t.Fatal("controller must start in loading")
	}

	controller.HandleLoaded(100)

	if controller.State() != StatePlaying {
		t.Fatalf("expected playing after auto-play, got %q", controller.State())
	}
	if player.playCalls != 1 {
		t.Fatalf("expected 1 play call, got %d", player.playCalls)
	}
}

func TestController_AutoPlayRefusalStaysReady(t *testing.T) {
	player := &fakePlayer{refusePlay: true}
	controller := NewController(testArtifact(), player, true)

	controller.HandleLoaded(100)

	if controller.State() != StateReady {
		t.Fatalf("refused auto-play must leave the controller ready, got %q", controller.State())
	}
	if controller.Snapshot().IsPlaying {
		t.Fatal("snapshot must not report playing after refusal")
	}
}

func TestController_TogglePlayPause(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(testArtifact(), player, false)
	controller.HandleLoaded(100)

	controller.TogglePlayPause()
	if controller.State() != StatePlaying {
		t.Fatalf("expected playing, got %q", controller.State())
	}

	controller.TogglePlayPause()
	if controller.State() != StatePaused {
		t.Fatalf("expected paused, got %q", controller.State())
	}
	if player.pauseCalls != 1 {
		t.Fatalf("expected 1 pause call, got %d", player.pauseCalls)
	}
	if controller.Snapshot().IsPlaying {
		t.Fatal("snapshot must report not playing while paused")
	}
}

func TestController_SeekClampsToDuration(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(testArtifact(), player, false)
	controller.HandleLoaded(100)

	if err := controller.Seek(0.5); err != nil {
		t.Fatal("Failed to seek:", err)
	}
	if got := controller.Snapshot().CurrentTime; got != 50 {
		t.Fatalf("expected position 50, got %v", got)
	}

	if err := controller.Seek(1.5); err != nil {
		t.Fatal("Failed to seek:", err)
	}
	if got := controller.Snapshot().CurrentTime; got != 100 {
		t.Fatalf("expected position clamped to 100, got %v", got)
	}

	if err := controller.Seek(-0.3); err != nil {
		t.Fatal("Failed to seek:", err)
	}
	if got := controller.Snapshot().CurrentTime; got != 0 {
		t.Fatalf("expected position clamped to 0, got %v", got)
	}
}

func TestController_SeekWhileLoadingFails(t *testing.T) {
	controller := NewController(testArtifact(), &fakePlayer{}, false)

	if err := controller.Seek(0.5); err == nil {
		t.Fatal("seek before the duration is known must fail")
	}
}

func TestController_TickOnlyWhilePlaying(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(testArtifact(), player, false)
	controller.HandleLoaded(100)

	controller.HandleTick(10)
	if got := controller.Snapshot().CurrentTime; got != 0 {
		t.Fatalf("ticks must be ignored while not playing, got position %v", got)
	}

	controller.TogglePlayPause()
	controller.HandleTick(10)
	if got := controller.Snapshot().CurrentTime; got != 10 {
		t.Fatalf("expected position 10, got %v", got)
	}

	controller.HandleTick(250)
	if got := controller.Snapshot().CurrentTime; got != 100 {
		t.Fatalf("tick beyond the end must clamp to duration, got %v", got)
	}
}

func TestController_EndedAndReplay(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(testArtifact(), player, false)
	controller.HandleLoaded(100)
	controller.TogglePlayPause()

	controller.HandleEnded()
	if controller.State() != StateEnded {
		t.Fatalf("expected ended, got %q", controller.State())
	}
	if got := controller.Snapshot().CurrentTime; got != 0 {
		t.Fatalf("position must reset at end of stream, got %v", got)
	}

	// Toggling an ended stream is a no-op; replay is the explicit path back.
	controller.TogglePlayPause()
	if controller.State() != StateEnded {
		t.Fatalf("toggle must not restart an ended stream, got %q", controller.State())
	}

	controller.Replay()
	if controller.State() != StatePlaying {
		t.Fatalf("expected playing after replay, got %q", controller.State())
	}
	if len(player.positions) == 0 || player.positions[len(player.positions)-1] != 0 {
		t.Fatal("replay must rewind the player to the start")
	}
}

func TestController_SeekEndedStreamRewindsToPaused(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(testArtifact(), player, false)
	controller.HandleLoaded(100)
	controller.TogglePlayPause()
	controller.HandleEnded()

	if err := controller.Seek(0.25); err != nil {
		t.Fatal("Failed to seek:", err)
	}
	if controller.State() != StatePaused {
		t.Fatalf("seeking an ended stream must pause it, got %q", controller.State())
	}

	controller.TogglePlayPause()
	if controller.State() != StatePlaying {
		t.Fatalf("expected playing after seek and toggle, got %q", controller.State())
	}
}

func TestController_Download(t *testing.T) {
	controller := NewController(testArtifact(), &fakePlayer{}, false)

	filename, reader, err := controller.Download("My Confession! #1")
	if err != nil {
		t.Fatal("Failed to export the artifact:", err)
	}
	if filename != "my_confession_1.mp3" {
		t.Fatalf("unexpected filename %q", filename)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal("Failed to read the exported artifact:", err)
	}
	if string(data) != "mp3-bytes" {
		t.Fatal("exported bytes do not match the artifact")
	}

	missing := NewController(nil, &fakePlayer{}, false)
	if _, _, err := missing.Download("x"); err == nil {
		t.Fatal("expected error when no artifact is attached")
	}
}
