package sched_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mbarria/gmxlab/internal/gmx"
	"github.com/mbarria/gmxlab/internal/sched"
)

type fakeExec struct {
	dir  string
	argv []string
	out  string
	err  error
}

func (f *fakeExec) Exec(_ context.Context, dir string, argv ...string) (string, error) {
	f.dir = dir
	f.argv = argv
	return f.out, f.err
}

var _ = Describe("Schedule", func() {
	var (
		dir string
		fe  *fakeExec
		sub *sched.Submitter
		cmd gmx.Command
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		fe = &fakeExec{out: "Submitted batch job 977\n"}
		sub = &sched.Submitter{Exec: fe}
		cmd = gmx.Command{Executable: gmx.ExecMDRun, Args: []string{"-deffnm", "md"}}
	})

	It("rejects a missing simulation name before touching the filesystem", func() {
		_, err := sub.Schedule(context.Background(), cmd, sched.Request{Ensemble: "md", Path: dir})
		Expect(err).To(MatchError(sched.ErrNoName))
		entries, readErr := os.ReadDir(dir)
		Expect(readErr).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
		Expect(fe.argv).To(BeNil())
	})

	It("rejects a missing ensemble", func() {
		_, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Path: dir})
		Expect(err).To(MatchError(sched.ErrNoEnsemble))
	})

	It("rejects a missing path", func() {
		_, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Ensemble: "md"})
		Expect(err).To(MatchError(sched.ErrNoPath))
	})

	It("writes the batch script into the run directory", func() {
		subm, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Ensemble: "md", Path: dir})
		Expect(err).NotTo(HaveOccurred())
		Expect(subm.Script).To(Equal(filepath.Join(dir, "md.slurm")))
		content, readErr := os.ReadFile(subm.Script)
		Expect(readErr).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("mpirun gmx_mpi mdrun -deffnm md"))
		Expect(string(content)).To(ContainSubstring("#SBATCH --job-name=lysmd"))
	})

	It("submits from the run directory without --wait by default", func() {
		_, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Ensemble: "md", Path: dir})
		Expect(err).NotTo(HaveOccurred())
		Expect(fe.dir).To(Equal(dir))
		Expect(fe.argv).To(Equal([]string{"sbatch", "md.slurm"}))
	})

	It("places --wait before the script name when asked to block", func() {
		_, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Ensemble: "md", Path: dir, Wait: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(fe.argv).To(Equal([]string{"sbatch", "--wait", "md.slurm"}))
	})

	It("applies the override when rendering the script", func() {
		req := sched.Request{
			Name: "lys", Ensemble: "md", Path: dir,
			Override: sched.BatchConfig{Partition: sched.String("gpu"), NTasks: "40"},
		}
		subm, err := sub.Schedule(context.Background(), cmd, req)
		Expect(err).NotTo(HaveOccurred())
		content, _ := os.ReadFile(subm.Script)
		Expect(string(content)).To(ContainSubstring("#SBATCH --partition=gpu"))
		Expect(string(content)).To(ContainSubstring("#SBATCH --ntasks=40"))
		Expect(subm.Config.NTasks).To(Equal("40"))
	})

	It("records the parsed job id and verbatim output", func() {
		subm, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Ensemble: "md", Path: dir})
		Expect(err).NotTo(HaveOccurred())
		Expect(subm.JobID).To(Equal("977"))
		Expect(subm.Output).To(Equal("Submitted batch job 977\n"))
	})

	It("propagates submission failures", func() {
		fe.err = errors.New("sbatch: command not found")
		_, err := sub.Schedule(context.Background(), cmd, sched.Request{Name: "lys", Ensemble: "md", Path: dir})
		Expect(err).To(MatchError(ContainSubstring("sbatch")))
	})
})

var _ = DescribeTable("ParseJobID",
	func(out, want string) {
		Expect(sched.ParseJobID(out)).To(Equal(want))
	},
	Entry("plain acknowledgement", "Submitted batch job 4242\n", "4242"),
	Entry("cluster suffix", "Submitted batch job 4242 on cluster andromeda\n", "4242"),
	Entry("preceded by chatter", "sbatch: loading defaults\nSubmitted batch job 7\n", "7"),
	Entry("unrelated output", "sbatch: error: invalid partition\n", ""),
	Entry("non-numeric id", "Submitted batch job soon\n", ""),
	Entry("empty output", "", ""),
)
