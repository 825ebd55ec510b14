// Package interpret estimates how sensitive a demo function's output is to
// each of its inputs.
//
// For every input that implements [components.NeighborInterpretable], the
// engine generates the component's neighbor values, runs the function once per
// neighbor with only that input perturbed, scores each run against the
// original output, and asks the component to shape the scores for the front
// end. Components without the capability appear in the result with nil Scores.
package interpret

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/go-vitrine/vitrine/pkg/components"
	"github.com/go-vitrine/vitrine/pkg/errors"
)

// Predictor runs the wrapped function on preprocessed inputs.
type Predictor func(ctx context.Context, inputs []any) ([]any, error)

// ScoreFunc compares a perturbed run against the original. Positive scores
// mean the perturbation raised the output, negative that it lowered it.
type ScoreFunc func(original, perturbed []any) float64

// DeltaScore is the default ScoreFunc: the change in the first numeric output
// (perturbed minus original). Non-numeric outputs score zero.
func DeltaScore(original, perturbed []any) float64 {
	for i := range original {
		if i >= len(perturbed) {
			break
		}
		o, okO := asFloat(original[i])
		p, okP := asFloat(perturbed[i])
		if okO && okP {
			return p - o
		}
	}
	return 0
}

// Result is the interpretation of one input component.
type Result struct {
	// ComponentID identifies the input.
	ComponentID string `json:"component_id"`
	// Label is the input's display name.
	Label string `json:"label"`
	// Scores is the component-shaped interpretation, nil when the component
	// does not support interpretation.
	Scores any `json:"scores"`
}

// Run interprets fn at the given sample, one transport value per input.
func Run(ctx context.Context, fn Predictor, inputs []components.Input, sample []json.RawMessage, score ScoreFunc) ([]Result, error) {
	const op = "interpret.Run"
	if len(sample) != len(inputs) {
		return nil, errors.Ef(op, errors.KindInterpret, "got %d values for %d inputs", len(sample), len(inputs))
	}
	if score == nil {
		score = DeltaScore
	}

	xs := make([]any, len(inputs))
	for i, comp := range inputs {
		v, err := comp.Preprocess(sample[i])
		if err != nil {
			return nil, errors.E(op, errors.KindInterpret, err)
		}
		xs[i] = v
	}

	original, err := fn(ctx, xs)
	if err != nil {
		return nil, errors.E(op, errors.KindPredict, err)
	}

	results := make([]Result, len(inputs))
	for i, comp := range inputs {
		results[i] = Result{ComponentID: comp.ID(), Label: comp.Label()}

		interp, ok := comp.(components.NeighborInterpretable)
		if !ok {
			continue
		}
		neighbors, err := interp.InterpretationNeighbors(xs[i])
		if err != nil {
			return nil, err
		}

		scores := make([]float64, len(neighbors))
		g, gctx := errgroup.WithContext(ctx)
		for j, neighbor := range neighbors {
			g.Go(func() error {
				perturbed := make([]any, len(xs))
				copy(perturbed, xs)
				perturbed[i] = neighbor
				out, err := fn(gctx, perturbed)
				if err != nil {
					return errors.E(op, errors.KindPredict, err)
				}
				scores[j] = score(original, out)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		shaped, err := interp.InterpretationScores(xs[i], scores)
		if err != nil {
			return nil, err
		}
		results[i].Scores = shaped
	}
	return results, nil
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
