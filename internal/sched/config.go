package sched

// BatchConfig holds the directives rendered into a batch script. Pointer
// fields are optional directives: nil leaves the default in place when
// merging, and an empty value removes the directive from the script.
type BatchConfig struct {
	JobName       string   `yaml:"job_name,omitempty"`
	Output        string   `yaml:"output,omitempty"`
	Partition     *string  `yaml:"partition,omitempty"`
	Nodes         *string  `yaml:"nodes,omitempty"`
	NTasks        string   `yaml:"ntasks,omitempty"`
	NTasksPerNode *string  `yaml:"ntasks_per_node,omitempty"`
	Modules       []string `yaml:"modules,omitempty"`
}

// Defaults returns the stock batch configuration for one run. The job is
// named after the simulation and ensemble, logs next to the run data, and
// loads the MPI and toolkit environment modules.
func Defaults(name, ensemble string) BatchConfig {
	return BatchConfig{
		JobName:       name + ensemble,
		Output:        ensemble + ".slurm.log",
		Partition:     String("andromeda"),
		Nodes:         String("1-12"),
		NTasks:        "10",
		NTasksPerNode: String("1"),
		Modules: []string{
			"module load mpi/mpich-x86_64",
			"module load gromacs/2023.5-plumed",
		},
	}
}

// Merge layers an override on top of c, field by field. Zero-valued fields
// of the override leave the receiver's value in place; anything else
// replaces it outright, including pointers to empty values, which is how a
// caller suppresses an optional directive.
func (c BatchConfig) Merge(o BatchConfig) BatchConfig {
	if o.JobName != "" {
		c.JobName = o.JobName
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Partition != nil {
		c.Partition = o.Partition
	}
	if o.Nodes != nil {
		c.Nodes = o.Nodes
	}
	if o.NTasks != "" {
		c.NTasks = o.NTasks
	}
	if o.NTasksPerNode != nil {
		c.NTasksPerNode = o.NTasksPerNode
	}
	if o.Modules != nil {
		c.Modules = o.Modules
	}
	return c
}

// String returns a pointer to s, for building optional directive values in
// literals and flag handlers.
func String(s string) *string {
	return &s
}
