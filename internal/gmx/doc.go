// Package gmx builds and runs GROMACS command lines.
//
// The package defines the fundamental pieces for driving the external
// toolkit:
//
//   - [Command]: an executable with its free arguments and ordered
//     flag/path bindings
//   - [Runner]: synchronous execution with captured, echoed output
//   - [System]: raw argument-vector execution for collaborators such as
//     the batch submitter
//
// # Example
//
//	cmd := gmx.Command{
//	    Executable: "grompp",
//	    Inputs:     []gmx.FilePair{{Flag: "-f", Path: "em.mdp"}, {Flag: "-c", Path: "solv.gro"}},
//	    Outputs:    []gmx.FilePair{{Flag: "-o", Path: "em.tpr"}},
//	}
//	r := &gmx.Runner{Dir: workdir}
//	err := r.Run(ctx, cmd)
//
// The simulation executable mdrun is never run directly: its command lines
// are built here but dispatched through the sched package, which wraps them
// in a batch script for the workload manager.
package gmx
