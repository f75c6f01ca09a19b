package sched_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mbarria/gmxlab/internal/sched"
)

var _ = Describe("Defaults", func() {
	It("names the job and log file after the run", func() {
		cfg := sched.Defaults("lysozyme", "npt")
		Expect(cfg.JobName).To(Equal("lysozymenpt"))
		Expect(cfg.Output).To(Equal("npt.slurm.log"))
	})

	It("fills every resource directive", func() {
		cfg := sched.Defaults("lysozyme", "npt")
		Expect(cfg.Partition).To(HaveValue(Equal("andromeda")))
		Expect(cfg.Nodes).To(HaveValue(Equal("1-12")))
		Expect(cfg.NTasks).To(Equal("10"))
		Expect(cfg.NTasksPerNode).To(HaveValue(Equal("1")))
	})

	It("loads the mpi and toolkit modules", func() {
		cfg := sched.Defaults("lysozyme", "npt")
		Expect(cfg.Modules).To(HaveLen(2))
		Expect(cfg.Modules[0]).To(ContainSubstring("mpich"))
		Expect(cfg.Modules[1]).To(ContainSubstring("gromacs"))
	})
})

var _ = Describe("Merge", func() {
	var base sched.BatchConfig

	BeforeEach(func() {
		base = sched.Defaults("lysozyme", "md")
	})

	It("leaves unspecified fields intact", func() {
		merged := base.Merge(sched.BatchConfig{NTasks: "40"})
		Expect(merged.NTasks).To(Equal("40"))
		Expect(merged.JobName).To(Equal("lysozymemd"))
		Expect(merged.Partition).To(HaveValue(Equal("andromeda")))
		Expect(merged.Modules).To(Equal(base.Modules))
	})

	It("replaces optional directives when the override sets them", func() {
		merged := base.Merge(sched.BatchConfig{
			Partition: sched.String("gpu"),
			Nodes:     sched.String("2"),
		})
		Expect(merged.Partition).To(HaveValue(Equal("gpu")))
		Expect(merged.Nodes).To(HaveValue(Equal("2")))
	})

	It("keeps optional directives when the override pointer is nil", func() {
		merged := base.Merge(sched.BatchConfig{JobName: "custom"})
		Expect(merged.Partition).To(HaveValue(Equal("andromeda")))
		Expect(merged.NTasksPerNode).To(HaveValue(Equal("1")))
	})

	It("suppresses a directive through a pointer to the empty value", func() {
		merged := base.Merge(sched.BatchConfig{Partition: sched.String("")})
		Expect(merged.Partition).To(HaveValue(Equal("")))
		Expect(sched.Script(merged, "true")).NotTo(ContainSubstring("--partition"))
	})

	It("replaces the module list wholesale", func() {
		merged := base.Merge(sched.BatchConfig{Modules: []string{"module load gromacs/2024.1"}})
		Expect(merged.Modules).To(HaveLen(1))
	})
})

var _ = Describe("Script", func() {
	It("renders the full default preamble in order", func() {
		cfg := sched.Defaults("lysozyme", "min")
		script := sched.Script(cfg, "mpirun gmx_mpi mdrun -v -deffnm min")
		Expect(script).To(Equal(strings.Join([]string{
			"#!/bin/bash",
			"",
			"#SBATCH --job-name=lysozymemin",
			"#SBATCH --output=min.slurm.log",
			"#SBATCH --partition=andromeda",
			"#SBATCH --nodes=1-12",
			"#SBATCH --ntasks=10",
			"#SBATCH --ntasks-per-node=1",
			"",
			"# Required modules",
			"module load mpi/mpich-x86_64",
			"module load gromacs/2023.5-plumed",
			"",
			"# Run the molecular dynamics simulation",
			"mpirun gmx_mpi mdrun -v -deffnm min",
			"",
		}, "\n")))
	})

	It("omits optional directives that are nil", func() {
		cfg := sched.BatchConfig{JobName: "job", Output: "out.log", NTasks: "4"}
		script := sched.Script(cfg, "true")
		Expect(script).NotTo(ContainSubstring("--partition"))
		Expect(script).NotTo(ContainSubstring("--nodes"))
		Expect(script).NotTo(ContainSubstring("--ntasks-per-node"))
		Expect(script).To(ContainSubstring("#SBATCH --ntasks=4"))
	})

	It("omits optional directives that are empty", func() {
		cfg := sched.Defaults("x", "y").Merge(sched.BatchConfig{NTasksPerNode: sched.String("")})
		Expect(sched.Script(cfg, "true")).NotTo(ContainSubstring("--ntasks-per-node"))
	})

	It("ends with the command line", func() {
		script := sched.Script(sched.Defaults("a", "b"), "mpirun gmx_mpi mdrun -deffnm b")
		lines := strings.Split(strings.TrimRight(script, "\n"), "\n")
		Expect(lines[len(lines)-1]).To(Equal("mpirun gmx_mpi mdrun -deffnm b"))
	})
})
