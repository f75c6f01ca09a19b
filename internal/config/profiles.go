package config

import (
	"sort"

	"github.com/mbarria/gmxlab/internal/sched"
)

// Profiles are built-in batch overrides for common submission shapes.
// "unmanaged" strips the resource directives so the cluster scheduler
// decides everything itself.
var Profiles = map[string]sched.BatchConfig{
	"debug": {
		Nodes:         sched.String("1"),
		NTasks:        "1",
		NTasksPerNode: sched.String("1"),
	},
	"throughput": {
		Nodes:  sched.String("1-4"),
		NTasks: "40",
	},
	"unmanaged": {
		Partition:     sched.String(""),
		Nodes:         sched.String(""),
		NTasksPerNode: sched.String(""),
	},
}

func ListProfiles(cfg *Config) []string {
	seen := map[string]bool{}
	for name := range Profiles {
		seen[name] = true
	}
	if cfg != nil {
		for name := range cfg.Profiles {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
