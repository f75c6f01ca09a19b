// Package pipeline runs scripted sequences of toolkit commands described
// in YAML, dispatching preparation steps directly and simulation steps
// through the workload manager.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mbarria/gmxlab/internal/gmx"
	"github.com/mbarria/gmxlab/internal/sched"
)

// Step is a single toolkit invocation in a pipeline.
type Step struct {
	Executable string         `yaml:"executable"`
	Args       []string       `yaml:"args"`
	Inputs     []gmx.FilePair `yaml:"inputs"`
	Outputs    []gmx.FilePair `yaml:"outputs"`
	Stdin      string         `yaml:"stdin"`
	Dir        string         `yaml:"dir"` // overrides the pipeline path for this step
}

// Pipeline is a scripted preparation and simulation sequence for one run.
type Pipeline struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Ensemble    string `yaml:"ensemble"`
	Path        string `yaml:"path"`
	Wait        bool   `yaml:"wait"` // block on scheduled steps so later steps see their outputs
	Steps       []Step `yaml:"steps"`
}

// Load reads a pipeline description from a YAML file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the pipeline can run before the first step starts.
func (p *Pipeline) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pipeline: name must be provided")
	}
	if p.Path == "" {
		return fmt.Errorf("pipeline: path must be provided")
	}
	if len(p.Steps) == 0 {
		return fmt.Errorf("pipeline: no steps defined")
	}
	for i, step := range p.Steps {
		if step.Executable == "" {
			return fmt.Errorf("pipeline: step %d has no executable", i+1)
		}
	}
	if p.Ensemble == "" {
		for _, step := range p.Steps {
			if step.Executable == gmx.ExecMDRun {
				return fmt.Errorf("pipeline: ensemble must be provided for %s steps", gmx.ExecMDRun)
			}
		}
	}
	return nil
}

// RunFunc executes one direct step in dir, feeding stdin to the child when
// non-empty. The production implementation wraps gmx.Runner.
type RunFunc func(ctx context.Context, dir, stdin string, c gmx.Command) error

// ScheduleFunc hands one command to the batch queue. sched.Submitter's
// Schedule method satisfies it.
type ScheduleFunc func(ctx context.Context, c gmx.Command, req sched.Request) (*sched.Submission, error)

// Run executes the steps in order, stopping at the first failure.
// Simulation steps go through schedule, everything else through run.
// Completed submissions are returned even when a later step fails.
func Run(ctx context.Context, p *Pipeline, run RunFunc, schedule ScheduleFunc) ([]*sched.Submission, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var subs []*sched.Submission
	for i, step := range p.Steps {
		fmt.Printf("Running step %d/%d: %s\n", i+1, len(p.Steps), step.Executable)

		cmd := gmx.Command{
			Executable: step.Executable,
			Args:       step.Args,
			Inputs:     step.Inputs,
			Outputs:    step.Outputs,
		}

		if step.Executable == gmx.ExecMDRun {
			sub, err := schedule(ctx, cmd, sched.Request{
				Name:     p.Name,
				Ensemble: p.Ensemble,
				Path:     p.Path,
				Wait:     p.Wait,
			})
			if err != nil {
				return subs, fmt.Errorf("step %d: %w", i+1, err)
			}
			subs = append(subs, sub)
			continue
		}

		dir := p.Path
		if step.Dir != "" {
			dir = step.Dir
		}
		if err := run(ctx, dir, step.Stdin, cmd); err != nil {
			return subs, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return subs, nil
}
