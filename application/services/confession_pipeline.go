package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/viveknaskar/ConfessBot/application/ports/inbound"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/domain"
	"github.com/viveknaskar/ConfessBot/sanitize"
)

type confessionPipeline struct {
	logger      outbound.LoggerPort
	registry    outbound.PersonaRegistryPort
	generator   outbound.ResponseGeneratorPort
	synthesizer outbound.SpeechSynthesizerPort
}

func NewConfessionPipeline(logger outbound.LoggerPort, registry outbound.PersonaRegistryPort,
	generator outbound.ResponseGeneratorPort, synthesizer outbound.SpeechSynthesizerPort) inbound.ConfessionPipelinePort {
	return &confessionPipeline{
		logger:      logger,
		registry:    registry,
		generator:   generator,
		synthesizer: synthesizer,
	}
}

// Run executes the stages strictly in order. The roast deliberately runs
// after narration, never concurrently with it: the alternate-voice choice
// excludes the narration persona, and a synthesis failure in either branch
// must abort the whole run rather than leave a half-populated result.
func (p *confessionPipeline) Run(ctx context.Context, params inbound.RunPipelineParams) (*domain.PipelineResult, error) {
	report := params.OnStage
	if report == nil {
		report = func(domain.PipelineStage) {}
	}

	persona, err := p.registry.Lookup(params.PersonaID)
	if err != nil {
		report(domain.StageFailed)
		return nil, err
	}

	report(domain.StageSanitizing)
	sanitized := strings.TrimSpace(sanitize.Text(params.Confession))
	if sanitized == "" {
		report(domain.StageFailed)
		return nil, domain.ErrEmptyInput
	}

	report(domain.StageGeneratingNarration)
	narration, err := p.generator.Generate(ctx, outbound.GenerateResponseRequest{
		Confession: params.Confession,
		Persona:    persona,
		Mode:       domain.NarrateMode,
	})
	if err != nil {
		report(domain.StageFailed)
		return nil, fmt.Errorf("generate narration: %w", err)
	}
	p.logger.InfoWithFields("narration generated", map[string]interface{}{
		"persona": persona.ID,
		"origin":  narration.Origin,
	})

	report(domain.StageSynthesizingNarration)
	// Generated text is untrusted output from an external system, so it goes
	// through the same allow-list the confession did.
	narrationAudio, err := p.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:    sanitize.Text(narration.Text),
		VoiceID: persona.VoiceID,
	})
	if err != nil {
		report(domain.StageFailed)
		return nil, fmt.Errorf("synthesize narration: %w", err)
	}

	result := &domain.PipelineResult{
		Narration: domain.VoicedText{Text: narration.Text, Audio: narrationAudio, Origin: narration.Origin},
	}

	if params.Roast {
		report(domain.StageGeneratingRoast)
		roast, err := p.generator.Generate(ctx, outbound.GenerateResponseRequest{
			Confession: params.Confession,
			Persona:    persona,
			Mode:       domain.RoastMode,
		})
		if err != nil {
			report(domain.StageFailed)
			return nil, fmt.Errorf("generate roast: %w", err)
		}

		roastPersona, err := p.registry.PickAlternate(persona.ID)
		if err != nil {
			report(domain.StageFailed)
			return nil, err
		}
		p.logger.InfoWithFields("roast generated", map[string]interface{}{
			"roast_voice": roastPersona.ID,
			"origin":      roast.Origin,
		})

		report(domain.StageSynthesizingRoast)
		roastAudio, err := p.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
			Text:    sanitize.Text(roast.Text),
			VoiceID: roastPersona.VoiceID,
		})
		if err != nil {
			report(domain.StageFailed)
			return nil, fmt.Errorf("synthesize roast: %w", err)
		}

		result.Roast = &domain.VoicedText{Text: roast.Text, Audio: roastAudio, Origin: roast.Origin}
	}

	report(domain.StageComplete)
	return result, nil
}
