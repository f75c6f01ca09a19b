// Package queue inspects the workload manager's job queue, both as a
// one-shot listing and as a live terminal view.
package queue

import (
	"context"
	"fmt"
	"strings"
)

// squeueFormat requests pipe-separated fields so job names with spaces
// survive parsing.
const squeueFormat = "%i|%j|%T|%M|%D|%P|%R"

// Job is one row of the queue listing.
type Job struct {
	ID        string
	Name      string
	State     string
	Time      string
	Nodes     string
	Partition string
	Reason    string
}

// Execer runs argument vectors for the queue commands. gmx.System is the
// production implementation.
type Execer interface {
	Exec(ctx context.Context, dir string, argv ...string) (string, error)
}

// Jobs lists the queue through squeue, optionally restricted to one user.
func Jobs(ctx context.Context, exec Execer, user string) ([]Job, error) {
	argv := []string{"squeue", "--noheader", "--format=" + squeueFormat}
	if user != "" {
		argv = append(argv, "--user="+user)
	}
	out, err := exec.Exec(ctx, "", argv...)
	if err != nil {
		return nil, fmt.Errorf("queue: squeue: %w", err)
	}
	return Parse(out), nil
}

// Parse splits squeue output into jobs. Short rows are kept with the
// missing fields empty, blank lines are dropped.
func Parse(out string) []Job {
	var jobs []Job
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		get := func(i int) string {
			if i < len(fields) {
				return strings.TrimSpace(fields[i])
			}
			return ""
		}
		jobs = append(jobs, Job{
			ID:        get(0),
			Name:      get(1),
			State:     get(2),
			Time:      get(3),
			Nodes:     get(4),
			Partition: get(5),
			Reason:    get(6),
		})
	}
	return jobs
}
