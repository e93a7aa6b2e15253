package cmdutil

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aoc2022/internal/ctxlog"
	"aoc2022/internal/puzzle"
	"aoc2022/pkg/api"
)

// Job is one part of one day, with its input already loaded.
type Job struct {
	Solver puzzle.Solver
	Part   int
	Input  string
	Source string
}

// RunJobs solves jobs in order and hands each answer to send. It stops at
// the first failure and returns the number of answers sent. Cancellation is
// checked between jobs; a running solve is never interrupted.
func RunJobs(ctx context.Context, jobs []Job, send func(api.AnswerV1) error) (int, error) {
	log := ctxlog.FromContext(ctx)
	total := 0
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		f, err := j.Solver.Part(j.Part)
		if err != nil {
			return total, err
		}
		log.Debug("solving", zap.Int("day", j.Solver.Day), zap.Int("part", j.Part), zap.String("input", j.Source))
		answer, err := f(j.Input)
		if err != nil {
			return total, fmt.Errorf("day %d part %d: %w", j.Solver.Day, j.Part, err)
		}
		log.Debug("solved", zap.Int("day", j.Solver.Day), zap.Int("part", j.Part), zap.String("answer", answer))
		if err := send(api.AnswerV1{
			Day:    j.Solver.Day,
			Part:   j.Part,
			Title:  j.Solver.Title,
			Answer: answer,
			Input:  j.Source,
		}); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}
