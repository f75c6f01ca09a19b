package sched

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mbarria/gmxlab/internal/gmx"
)

// Execer runs argument vectors on behalf of the submitter. The production
// implementation is gmx.System; tests substitute a recording fake so no
// workload manager is needed on the host.
type Execer interface {
	Exec(ctx context.Context, dir string, argv ...string) (string, error)
}

// Request identifies the run a command should be scheduled for.
type Request struct {
	Name     string      // simulation name, prefixes the job name
	Ensemble string      // ensemble label, names the script and log files
	Path     string      // run directory the script is written into
	Wait     bool        // block until the job leaves the queue
	Override BatchConfig // layered on top of Defaults
}

func (r Request) validate() error {
	switch {
	case r.Name == "":
		return ErrNoName
	case r.Ensemble == "":
		return ErrNoEnsemble
	case r.Path == "":
		return ErrNoPath
	}
	return nil
}

// Submission describes a job handed to the workload manager.
type Submission struct {
	Script string      // path of the written batch script
	JobID  string      // queue identifier parsed from the sbatch reply, may be empty
	Output string      // verbatim sbatch output
	Config BatchConfig // fully merged configuration the script was rendered from
}

// Submitter schedules commands as batch jobs.
type Submitter struct {
	Exec Execer
}

// Schedule validates the request, renders and writes the batch script for
// the command, and submits it with sbatch. Parameter errors are returned
// before anything touches the filesystem.
func (s *Submitter) Schedule(ctx context.Context, cmd gmx.Command, req Request) (*Submission, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	cfg := Defaults(req.Name, req.Ensemble).Merge(req.Override)
	path, err := WriteScript(req.Path, req.Ensemble, cfg, cmd.String())
	if err != nil {
		return nil, err
	}

	argv := []string{"sbatch"}
	if req.Wait {
		argv = append(argv, "--wait")
	}
	argv = append(argv, req.Ensemble+".slurm")

	out, err := s.Exec.Exec(ctx, req.Path, argv...)
	if err != nil {
		return nil, fmt.Errorf("sched: sbatch: %w", err)
	}
	return &Submission{
		Script: path,
		JobID:  ParseJobID(out),
		Output: out,
		Config: cfg,
	}, nil
}

// ParseJobID extracts the job identifier from an sbatch acknowledgement
// such as "Submitted batch job 4242". It returns the empty string when the
// output has some other shape.
func ParseJobID(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "Submitted" || fields[1] != "batch" || fields[2] != "job" {
			continue
		}
		if _, err := strconv.Atoi(fields[3]); err == nil {
			return fields[3]
		}
	}
	return ""
}
