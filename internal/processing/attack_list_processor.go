package processing

import (
	"context"
	"fmt"

	"sort_attack_list/internal/app"
	"sort_attack_list/internal/domain/attack"

	"github.com/rs/zerolog/log"
)

// RunSummary describes one completed run
type RunSummary struct {
	Mode             string
	InputCommands    int
	OutputCommands   int
	DroppedDuplicate int
}

// AttackListProcessor reads an attack list, applies the configured pipeline
// and writes the result
type AttackListProcessor struct {
	store  DocumentStoreInterface
	config *app.Config
}

func NewAttackListProcessor(store DocumentStoreInterface, config *app.Config) *AttackListProcessor {
	return &AttackListProcessor{
		store:  store,
		config: config,
	}
}

// Run performs a single load, transform and save. Nothing is written unless
// every record was processed.
func (p *AttackListProcessor) Run(ctx context.Context) (*RunSummary, error) {
	transform, err := attack.Pipeline(p.config.Mode)
	if err != nil {
		return nil, err
	}

	doc, err := p.store.Load(p.config.InputPath)
	if err != nil {
		return nil, err
	}

	records, err := doc.Commands()
	if err != nil {
		return nil, fmt.Errorf("failed to read commands: %w", err)
	}

	log.Debug().
		Int("commands", len(records)).
		Str("mode", p.config.Mode).
		Bool("filter_by_position", p.config.FilterByPosition).
		Int("home_x", p.config.Home.X).
		Int("home_y", p.config.Home.Y).
		Msg("Loaded attack list")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := transform(records, p.config.Home, p.config.FilterByPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to sort attack list: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := doc.SetCommands(result); err != nil {
		return nil, err
	}
	if err := p.store.Save(p.config.OutputPath, doc); err != nil {
		return nil, fmt.Errorf("failed to save attack list: %w", err)
	}

	summary := &RunSummary{
		Mode:             p.config.Mode,
		InputCommands:    len(records),
		OutputCommands:   len(result),
		DroppedDuplicate: len(records) - len(result),
	}

	log.Info().
		Str("mode", summary.Mode).
		Int("input_commands", summary.InputCommands).
		Int("output_commands", summary.OutputCommands).
		Int("dropped_duplicates", summary.DroppedDuplicate).
		Str("output", p.config.OutputPath).
		Msg("Sorted attack list")

	return summary, nil
}
