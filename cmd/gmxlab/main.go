package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/mbarria/gmxlab/internal/analysis"
	"github.com/mbarria/gmxlab/internal/config"
	"github.com/mbarria/gmxlab/internal/gmx"
	"github.com/mbarria/gmxlab/internal/history"
	"github.com/mbarria/gmxlab/internal/pipeline"
	"github.com/mbarria/gmxlab/internal/plot"
	"github.com/mbarria/gmxlab/internal/queue"
	"github.com/mbarria/gmxlab/internal/report"
	"github.com/mbarria/gmxlab/internal/sched"
	"github.com/mbarria/gmxlab/internal/xvg"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Command construction
	cmdArgs  []string
	inPairs  []string
	outPairs []string
	// Direct execution
	workDir   string
	stdinText string
	// Submission
	simName       string
	runPath       string
	wait          bool
	configFile    string
	profileName   string
	jobName       string
	logFile       string
	partition     string
	nodes         string
	ntasks        string
	ntasksPerNode string
	modules       []string
	// Plotting
	plotDir     string
	suffix      string
	title       string
	subtitle    string
	xLabel      string
	yLabel      string
	seriesLabel string
	movAvg      int
	replicas    int
	mode        string
	// Density
	bandwidth float64
	// Report
	overlay bool
	measure string
	units   string
	values  []float64
	htmlOut string
	// Queue watch
	queueUser string
	interval  int
)

// main is the entry point for the gmxlab CLI; it registers commands and flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gmxlab",
		Short: "gromacs simulation and analysis workflows",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gmxlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [executable]",
		Short: "run a toolkit command and echo its output",
		Args:  cobra.ExactArgs(1),
		RunE:  runCommand,
	}
	runCmd.Flags().StringArrayVar(&cmdArgs, "arg", nil, "extra argument, repeatable")
	runCmd.Flags().StringArrayVar(&inPairs, "in", nil, "input file pair flag=path, repeatable")
	runCmd.Flags().StringArrayVar(&outPairs, "out", nil, "output file pair flag=path, repeatable")
	runCmd.Flags().StringVar(&workDir, "dir", "", "working directory")
	runCmd.Flags().StringVar(&stdinText, "stdin", "", "text fed to the command's standard input")

	submitCmd := &cobra.Command{
		Use:   "submit [ensemble]",
		Short: "schedule a simulation on the cluster",
		Args:  cobra.ExactArgs(1),
		RunE:  submitRun,
	}
	submitCmd.Flags().StringVar(&simName, "name", "", "simulation name")
	submitCmd.Flags().StringVar(&runPath, "path", ".", "run directory")
	submitCmd.Flags().BoolVar(&wait, "wait", false, "block until the job leaves the queue")
	submitCmd.Flags().StringArrayVar(&cmdArgs, "arg", nil, "extra mdrun argument, repeatable")
	submitCmd.Flags().StringArrayVar(&inPairs, "in", nil, "input file pair flag=path, repeatable")
	submitCmd.Flags().StringArrayVar(&outPairs, "out", nil, "output file pair flag=path, repeatable")
	addBatchFlags(submitCmd)

	scriptCmd := &cobra.Command{
		Use:   "script [ensemble]",
		Short: "print the batch script without submitting",
		Args:  cobra.ExactArgs(1),
		RunE:  renderScript,
	}
	scriptCmd.Flags().StringVar(&simName, "name", "", "simulation name")
	scriptCmd.Flags().StringArrayVar(&cmdArgs, "arg", nil, "extra mdrun argument, repeatable")
	scriptCmd.Flags().StringArrayVar(&inPairs, "in", nil, "input file pair flag=path, repeatable")
	scriptCmd.Flags().StringArrayVar(&outPairs, "out", nil, "output file pair flag=path, repeatable")
	addBatchFlags(scriptCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [ensemble]",
		Short: "plot one measurement to png",
		Args:  cobra.ExactArgs(1),
		RunE:  plotMeasurement,
	}
	addPlotFlags(plotCmd)

	multiplotCmd := &cobra.Command{
		Use:   "multiplot [ensemble]",
		Short: "overlay a measurement across replicas",
		Args:  cobra.ExactArgs(1),
		RunE:  plotReplicas,
	}
	addPlotFlags(multiplotCmd)
	multiplotCmd.Flags().IntVar(&replicas, "replicas", 1, "number of replicas")
	multiplotCmd.Flags().StringVar(&mode, "mode", "both", "curves to draw: values, moving_average or both")

	densityCmd := &cobra.Command{
		Use:   "density [ensemble]",
		Short: "plot replica value distributions",
		Args:  cobra.ExactArgs(1),
		RunE:  plotDensity,
	}
	addPlotFlags(densityCmd)
	densityCmd.Flags().IntVar(&replicas, "replicas", 1, "number of replicas")
	densityCmd.Flags().Float64Var(&bandwidth, "bandwidth", 0, "kernel bandwidth scale, 0 keeps the default")

	reportCmd := &cobra.Command{
		Use:   "report [ensemble]",
		Short: "render plots and an html gallery for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  renderReport,
	}
	addPlotFlags(reportCmd)
	reportCmd.Flags().IntVar(&replicas, "replicas", 0, "number of replicas, 0 plots the run directory itself")
	reportCmd.Flags().BoolVar(&overlay, "overlay", false, "combine replicas into one image")
	reportCmd.Flags().StringVar(&mode, "mode", "", "overlay curves: values, moving_average or both")
	reportCmd.Flags().StringVar(&measure, "measure", "", "condition distinguishing the replicas, e.g. T")
	reportCmd.Flags().StringVar(&units, "units", "", "units of the condition, e.g. K")
	reportCmd.Flags().Float64SliceVar(&values, "value", nil, "condition value per replica, repeatable")
	reportCmd.Flags().StringVar(&htmlOut, "html", "", "write the gallery fragment to this file instead of stdout")

	previewCmd := &cobra.Command{
		Use:   "preview [file.xvg]",
		Short: "ascii preview of an xvg file",
		Args:  cobra.ExactArgs(1),
		RunE:  previewXVG,
	}
	previewCmd.Flags().IntVar(&movAvg, "movavg", 0, "moving-average window in rows, 0 disables")

	pipelineCmd := &cobra.Command{
		Use:   "pipeline [file.yaml]",
		Short: "run a scripted sequence of toolkit steps",
		Args:  cobra.ExactArgs(1),
		RunE:  runPipeline,
	}

	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "list recorded submissions",
		RunE:  listJobs,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "live view of the cluster queue",
		RunE:  watchQueue,
	}
	watchCmd.Flags().StringVar(&queueUser, "user", os.Getenv("USER"), "queue user to filter on")
	watchCmd.Flags().IntVar(&interval, "interval", 10, "refresh interval in seconds")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list batch profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if configFile != "" {
				var err error
				cfg, err = config.Load(configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}
			fmt.Println("profiles:")
			for _, name := range config.ListProfiles(cfg) {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
	profilesCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(runCmd, submitCmd, scriptCmd, plotCmd, multiplotCmd, densityCmd, reportCmd, previewCmd, pipelineCmd, jobsCmd, watchCmd, profilesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&profileName, "profile", "", "use a named batch profile")
	cmd.Flags().StringVar(&jobName, "job-name", "", "override the job name")
	cmd.Flags().StringVar(&logFile, "log", "", "override the job log file")
	cmd.Flags().StringVar(&partition, "partition", "", "cluster partition, empty drops the directive")
	cmd.Flags().StringVar(&nodes, "nodes", "", "node count or range, empty drops the directive")
	cmd.Flags().StringVar(&ntasks, "ntasks", "", "number of tasks")
	cmd.Flags().StringVar(&ntasksPerNode, "ntasks-per-node", "", "tasks per node, empty drops the directive")
	cmd.Flags().StringArrayVar(&modules, "module", nil, "environment setup line, repeatable, replaces the defaults")
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&plotDir, "dir", ".", "run directory holding the xvg files")
	cmd.Flags().StringVar(&suffix, "suffix", "", "file suffix selecting the measurement, e.g. _temp")
	cmd.Flags().StringVar(&title, "title", "", "plot title")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "subtitle appended to the title")
	cmd.Flags().StringVar(&xLabel, "xlabel", "", "x axis label")
	cmd.Flags().StringVar(&yLabel, "ylabel", "", "y axis label")
	cmd.Flags().StringVar(&seriesLabel, "label", "", "legend label of the series")
	cmd.Flags().IntVar(&movAvg, "movavg", 0, "moving-average window in rows, 0 disables")
}

// parsePairs turns repeated flag=path arguments into file pairs, accepting
// the flag with or without its leading dash.
func parsePairs(pairs []string) ([]gmx.FilePair, error) {
	out := make([]gmx.FilePair, 0, len(pairs))
	for _, p := range pairs {
		flag, path, ok := strings.Cut(p, "=")
		if !ok || flag == "" || path == "" {
			return nil, fmt.Errorf("file pair %q must look like flag=path", p)
		}
		if !strings.HasPrefix(flag, "-") {
			flag = "-" + flag
		}
		out = append(out, gmx.FilePair{Flag: flag, Path: path})
	}
	return out, nil
}

func buildCommand(executable string) (gmx.Command, error) {
	inputs, err := parsePairs(inPairs)
	if err != nil {
		return gmx.Command{}, err
	}
	outputs, err := parsePairs(outPairs)
	if err != nil {
		return gmx.Command{}, err
	}
	return gmx.Command{
		Executable: executable,
		Args:       cmdArgs,
		Inputs:     inputs,
		Outputs:    outputs,
	}, nil
}

// batchOverride layers the config file, the selected profile and any
// changed flags into one override. CLI flags win over the profile, the
// profile wins over the file.
func batchOverride(cmd *cobra.Command) (sched.BatchConfig, error) {
	var override sched.BatchConfig

	var cfg *config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return override, fmt.Errorf("failed to load config: %w", err)
		}
		override = cfg.Batch
	}

	if profileName != "" {
		p := cfg.Profile(profileName)
		if p == nil {
			return override, fmt.Errorf("unknown profile: %s (available: %v)", profileName, config.ListProfiles(cfg))
		}
		override = override.Merge(*p)
	}

	flags := cmd.Flags()
	if flags.Changed("job-name") {
		override.JobName = jobName
	}
	if flags.Changed("log") {
		override.Output = logFile
	}
	if flags.Changed("partition") {
		override.Partition = sched.String(partition)
	}
	if flags.Changed("nodes") {
		override.Nodes = sched.String(nodes)
	}
	if flags.Changed("ntasks") {
		override.NTasks = ntasks
	}
	if flags.Changed("ntasks-per-node") {
		override.NTasksPerNode = sched.String(ntasksPerNode)
	}
	if flags.Changed("module") {
		override.Modules = modules
	}
	return override, nil
}

func runCommand(cmd *cobra.Command, args []string) error {
	executable := args[0]
	if executable == gmx.ExecMDRun {
		return fmt.Errorf("%s runs through the workload manager, use submit", gmx.ExecMDRun)
	}

	c, err := buildCommand(executable)
	if err != nil {
		return err
	}

	r := &gmx.Runner{Dir: workDir, Stdin: stdinText}
	return r.Run(context.Background(), c)
}

func submitRun(cmd *cobra.Command, args []string) error {
	ensemble := args[0]

	override, err := batchOverride(cmd)
	if err != nil {
		return err
	}
	c, err := buildCommand(gmx.ExecMDRun)
	if err != nil {
		return err
	}

	submitter := &sched.Submitter{Exec: gmx.System{}}
	sub, err := submitter.Schedule(context.Background(), c, sched.Request{
		Name:     simName,
		Ensemble: ensemble,
		Path:     runPath,
		Wait:     wait,
		Override: override,
	})
	if err != nil {
		return err
	}

	st := history.New(dataDir)
	id, err := st.Save(history.Record{
		Name:     simName,
		Ensemble: ensemble,
		Path:     runPath,
		Script:   sub.Script,
		JobID:    sub.JobID,
		Wait:     wait,
	})
	if err != nil {
		return err
	}

	fmt.Printf("script: %s\n", sub.Script)
	if sub.JobID != "" {
		fmt.Printf("job id: %s\n", sub.JobID)
	}
	fmt.Printf("run id: %s\n", id)
	return nil
}

func renderScript(cmd *cobra.Command, args []string) error {
	ensemble := args[0]

	override, err := batchOverride(cmd)
	if err != nil {
		return err
	}
	c, err := buildCommand(gmx.ExecMDRun)
	if err != nil {
		return err
	}

	cfg := sched.Defaults(simName, ensemble).Merge(override)
	fmt.Print(sched.Script(cfg, c.String()))
	return nil
}

func plotOptions() plot.Options {
	return plot.Options{
		Title:    title,
		Subtitle: subtitle,
		XLabel:   xLabel,
		YLabel:   yLabel,
		Label:    seriesLabel,
		Suffix:   suffix,
		MovAvg:   movAvg,
	}
}

func plotMeasurement(cmd *cobra.Command, args []string) error {
	out, err := plot.Line(plotDir, args[0], plotOptions())
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func plotReplicas(cmd *cobra.Command, args []string) error {
	m, err := plot.ParseMode(mode)
	if err != nil {
		return err
	}

	out, err := plot.MultiLine(plotDir, args[0], replicas, m, plotOptions())
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func plotDensity(cmd *cobra.Command, args []string) error {
	out, err := plot.MultiDensity(plotDir, args[0], replicas, plot.DensityOptions{
		Title:     title,
		XLabel:    xLabel,
		YLabel:    yLabel,
		Label:     seriesLabel,
		Suffix:    suffix,
		Bandwidth: bandwidth,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func renderReport(cmd *cobra.Command, args []string) error {
	var m plot.Mode
	if mode != "" {
		var err error
		m, err = plot.ParseMode(mode)
		if err != nil {
			return err
		}
	}

	html, err := report.Render(report.Params{
		Title:    title,
		Path:     plotDir,
		Ensemble: args[0],
		XLabel:   xLabel,
		YLabel:   yLabel,
		Label:    seriesLabel,
		Suffix:   suffix,
		MovAvg:   movAvg,
		Replicas: replicas,
		Overlay:  overlay,
		Mode:     m,
		Measure:  measure,
		Units:    units,
		Values:   values,
	})
	if err != nil {
		return err
	}

	if htmlOut != "" {
		if err := os.WriteFile(htmlOut, []byte(html), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", htmlOut)
		return nil
	}
	fmt.Print(html)
	return nil
}

func previewXVG(cmd *cobra.Command, args []string) error {
	tbl, err := xvg.Read(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", args[0])
	fmt.Printf("samples: %d\n\n", tbl.Rows())

	graph := asciigraph.Plot(tbl.Y,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(filepath.Base(args[0])),
	)
	fmt.Println(graph)

	if movAvg > 0 {
		if smooth := analysis.MovingAverage(tbl.Y, movAvg); smooth != nil {
			fmt.Println()
			graph := asciigraph.Plot(smooth,
				asciigraph.Height(15),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("%d-row moving average", movAvg)),
			)
			fmt.Println(graph)
		}
	}
	return nil
}

func runPipeline(cmd *cobra.Command, args []string) error {
	p, err := pipeline.Load(args[0])
	if err != nil {
		return err
	}

	run := func(ctx context.Context, dir, stdin string, c gmx.Command) error {
		r := &gmx.Runner{Dir: dir, Stdin: stdin}
		return r.Run(ctx, c)
	}
	submitter := &sched.Submitter{Exec: gmx.System{}}

	subs, err := pipeline.Run(context.Background(), p, run, submitter.Schedule)
	if err != nil {
		return err
	}

	st := history.New(dataDir)
	for _, sub := range subs {
		id, err := st.Save(history.Record{
			Name:     p.Name,
			Ensemble: p.Ensemble,
			Path:     p.Path,
			Script:   sub.Script,
			JobID:    sub.JobID,
			Wait:     p.Wait,
		})
		if err != nil {
			return err
		}
		if sub.JobID != "" {
			fmt.Printf("job id: %s\n", sub.JobID)
		}
		fmt.Printf("run id: %s\n", id)
	}
	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	st := history.New(dataDir)
	records, err := st.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no submissions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tENSEMBLE\tSUBMITTED\tJOB\tWAIT")

	for _, rec := range records {
		jobID := rec.JobID
		if jobID == "" {
			jobID = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n",
			rec.ID,
			rec.Name,
			rec.Ensemble,
			rec.Submitted.Format("2006-01-02 15:04:05"),
			jobID,
			rec.Wait,
		)
	}

	return w.Flush()
}

func watchQueue(cmd *cobra.Command, args []string) error {
	fetch := func() ([]queue.Job, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return queue.Jobs(ctx, gmx.System{}, queueUser)
	}

	m := queue.NewModel(fetch, queueUser, time.Duration(interval)*time.Second)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
