package sched

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// directive is one #SBATCH line of the script preamble. A nil value drops
// the line entirely.
type directive struct {
	flag  string
	value *string
}

// Script renders a batch script that loads the configured environment
// modules and runs the given command line. Optional directives with no
// value are omitted rather than rendered empty.
func Script(cfg BatchConfig, command string) string {
	opt := func(p *string) *string {
		if p == nil || *p == "" {
			return nil
		}
		return p
	}
	directives := []directive{
		{"job-name", &cfg.JobName},
		{"output", &cfg.Output},
		{"partition", opt(cfg.Partition)},
		{"nodes", opt(cfg.Nodes)},
		{"ntasks", &cfg.NTasks},
		{"ntasks-per-node", opt(cfg.NTasksPerNode)},
	}

	lines := []string{"#!/bin/bash", ""}
	for _, d := range directives {
		if d.value == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("#SBATCH --%s=%s", d.flag, *d.value))
	}
	lines = append(lines, "", "# Required modules")
	lines = append(lines, cfg.Modules...)
	lines = append(lines, "", "# Run the molecular dynamics simulation", command)
	return strings.Join(lines, "\n") + "\n"
}

// ScriptPath returns the location of the batch script for an ensemble
// inside a run directory.
func ScriptPath(dir, ensemble string) string {
	return filepath.Join(dir, ensemble+".slurm")
}

// WriteScript renders the script and writes it into the run directory,
// returning the script path.
func WriteScript(dir, ensemble string, cfg BatchConfig, command string) (string, error) {
	path := ScriptPath(dir, ensemble)
	if err := os.WriteFile(path, []byte(Script(cfg, command)), 0o644); err != nil {
		return "", fmt.Errorf("sched: write script: %w", err)
	}
	return path, nil
}
