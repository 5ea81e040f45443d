package transform

import (
	"github.com/sydmet/weatherfeat/timetable"
)

// Pipeline chains transforms sequentially. Fit runs each step on the output
// of the previous step's transform, so downstream steps learn from the
// schema they will actually see.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{
		steps: steps,
	}
}

func (p *Pipeline) Fit(tbl *timetable.Table) error {
	if len(p.steps) == 0 {
		return ErrEmptyPipeline
	}
	if tbl == nil {
		return ErrNoTable
	}

	cur := tbl
	for i, step := range p.steps {
		if err := step.Fit(cur); err != nil {
			return err
		}
		// the last step's output is never consumed during fitting
		if i == len(p.steps)-1 {
			break
		}
		next, err := step.Transform(cur)
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}

func (p *Pipeline) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	if len(p.steps) == 0 {
		return nil, ErrEmptyPipeline
	}
	if tbl == nil {
		return nil, ErrNoTable
	}

	cur := tbl
	for _, step := range p.steps {
		next, err := step.Transform(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
