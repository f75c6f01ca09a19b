package gmx

import "strings"

// Names of the toolkit binaries involved in command construction.
const (
	Tool     = "gmx"     // serial toolkit driver
	MPITool  = "gmx_mpi" // MPI-enabled toolkit driver
	Launcher = "mpirun"  // process launcher for the MPI driver

	// ExecMDRun is the simulation engine. Commands for it are launched
	// through Launcher and MPITool instead of the serial driver.
	ExecMDRun = "mdrun"
)

// FilePair binds a command-line flag to a file path. Pairs keep their
// declaration order all the way to the final argument vector.
type FilePair struct {
	Flag string `yaml:"flag"`
	Path string `yaml:"path"`
}

// Command describes one invocation of a toolkit executable.
//
// Inputs and Outputs carry the same flag/path shape; they are kept apart
// because input files are expected to exist before the run while output
// paths are produced by it, and because the argument vector lists inputs
// first.
type Command struct {
	Executable string     `yaml:"executable"`
	Args       []string   `yaml:"args,omitempty"`
	Inputs     []FilePair `yaml:"inputs,omitempty"`
	Outputs    []FilePair `yaml:"outputs,omitempty"`
}

// Argv returns the full argument vector for the command, starting with the
// program to execute. Free arguments come first, then input pairs, then
// output pairs, each pair contributing its flag immediately followed by its
// path.
func (c Command) Argv() []string {
	var argv []string
	if c.Executable == ExecMDRun {
		argv = append(argv, Launcher, MPITool, ExecMDRun)
	} else {
		argv = append(argv, Tool, c.Executable)
	}
	argv = append(argv, c.Args...)
	for _, p := range c.Inputs {
		argv = append(argv, p.Flag, p.Path)
	}
	for _, p := range c.Outputs {
		argv = append(argv, p.Flag, p.Path)
	}
	return argv
}

// String renders the command as a single shell line. The rendering is used
// verbatim as the payload line of batch scripts.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
