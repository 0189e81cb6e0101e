package services

import (
	"context"
	"testing"

	"github.com/viveknaskar/ConfessBot/application/ports/inbound"
	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/infrastructure/adapters"
)

// manualDispatcher queues submitted tasks so the test controls when each
// invocation actually runs.
type manualDispatcher struct {
	tasks []func()
}

func (d *manualDispatcher) Submit(task func()) error {
	d.tasks = append(d.tasks, task)
	return nil
}

func (d *manualDispatcher) runAll() {
	for _, task := range d.tasks {
		task()
	}
	d.tasks = nil
}

func TestPipelineRunner_OnlyLatestInvocationDelivers(t *testing.T) {
	dispatcher := &manualDispatcher{}
	pipeline := NewConfessionPipeline(adapters.NewZerologWrapper(), newTestRegistry(t), &fakeGenerator{}, &fakeSynthesizer{})
	runner := NewPipelineRunner(adapters.NewZerologWrapper(), dispatcher, pipeline)

	var delivered []string

	first, err := runner.Start(context.Background(), inbound.RunPipelineParams{
		Confession: "first confession",
		PersonaID:  "morgan-freeman",
	}, func(result *domain.PipelineResult, err error) {
		delivered = append(delivered, "first")
	})
	if err != nil {
		t.Fatal("Failed to start first invocation:", err)
	}

	second, err := runner.Start(context.Background(), inbound.RunPipelineParams{
		Confession: "second confession",
		PersonaID:  "elon-musk",
	}, func(result *domain.PipelineResult, err error) {
		if err != nil {
			t.Fatal("second invocation failed:", err)
		}
		delivered = append(delivered, "second")
	})
	if err != nil {
		t.Fatal("Failed to start second invocation:", err)
	}
	if first == second {
		t.Fatal("invocation ids must be unique")
	}
	if runner.ActiveInvocation() != second {
		t.Fatal("second invocation should be the active one")
	}

	dispatcher.runAll()

	if len(delivered) != 1 || delivered[0] != "second" {
		t.Fatalf("only the latest invocation may deliver, got %v", delivered)
	}
}

func TestPipelineRunner_SingleInvocationDelivers(t *testing.T) {
	dispatcher := &manualDispatcher{}
	pipeline := NewConfessionPipeline(adapters.NewZerologWrapper(), newTestRegistry(t), &fakeGenerator{}, &fakeSynthesizer{})
	runner := NewPipelineRunner(adapters.NewZerologWrapper(), dispatcher, pipeline)

	var got *domain.PipelineResult
	if _, err := runner.Start(context.Background(), inbound.RunPipelineParams{
		Confession: "I talk to my plants",
		PersonaID:  "scarlett-johansson",
	}, func(result *domain.PipelineResult, err error) {
		if err != nil {
			t.Fatal("invocation failed:", err)
		}
		got = result
	}); err != nil {
		t.Fatal("Failed to start invocation:", err)
	}

	dispatcher.runAll()

	if got == nil || got.Narration.Text == "" {
		t.Fatal("result was not delivered")
	}
}
