// Package sched routes simulation commands through the Slurm workload
// manager.
//
// Dispatch happens in three steps: resolve a [BatchConfig] for the run by
// layering overrides onto [Defaults], render it together with the command
// line into a batch script with [Script], then write the script next to the
// run's data and hand it to sbatch via [Submitter.Schedule].
//
// Resource directives come in two kinds. Required ones (job name, log file,
// task count) always appear in the script. Optional ones (partition, node
// range, tasks per node) are pointer-valued: a nil or empty value drops the
// directive so the cluster's own defaults apply.
package sched
