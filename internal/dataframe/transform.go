package dataframe

// Transform maps one Frame to a new Frame without mutating its input. The
// cleaning constructors in this package return Transforms with their
// parameters captured at construction time; applying one is referentially
// transparent.
type Transform func(*Frame) (*Frame, error)

// Pipeline is an ordered sequence of Transforms applied back to back.
type Pipeline struct {
	steps []Transform
}

// NewPipeline builds a Pipeline from the given steps.
func NewPipeline(steps ...Transform) *Pipeline {
	return &Pipeline{steps: steps}
}

// Add appends a step and returns the Pipeline for chaining.
func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

// Run applies every step in order, stopping at the first failure.
func (p *Pipeline) Run(f *Frame) (*Frame, error) {
	cur := f
	var err error
	for _, step := range p.steps {
		cur, err = step(cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
