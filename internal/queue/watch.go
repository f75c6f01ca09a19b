package queue

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

const historyCapacity = 600

type TickMsg time.Time

type jobsMsg struct {
	jobs []Job
	err  error
}

// Model is the live queue view. It polls through the fetch function on a
// fixed interval and tracks queue depth over time.
type Model struct {
	fetch    func() ([]Job, error)
	user     string
	every    time.Duration
	jobs     []Job
	err      error
	lastPoll time.Time
	history  []float64
	paused   bool
}

// NewModel builds a watch view polling fetch every interval. The user is
// only displayed in the header; filtering happens inside fetch.
func NewModel(fetch func() ([]Job, error), user string, every time.Duration) Model {
	if every <= 0 {
		every = 5 * time.Second
	}
	return Model{
		fetch:   fetch,
		user:    user,
		every:   every,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) poll() tea.Msg {
	jobs, err := m.fetch()
	return jobsMsg{jobs: jobs, err: err}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.poll
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.poll
		case " ":
			m.paused = !m.paused
		}
	case jobsMsg:
		m.jobs, m.err = msg.jobs, msg.err
		m.lastPoll = time.Now()
		if msg.err == nil {
			m.history = append(m.history, float64(len(msg.jobs)))
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	case TickMsg:
		if m.paused {
			return m, m.tick()
		}
		return m, m.poll
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	title := "SLURM QUEUE"
	if m.user != "" {
		title += "  " + m.user
	}
	s.WriteString(headerStyle.Render(title) + "\n")

	status := fmt.Sprintf("%d jobs", len(m.jobs))
	if !m.lastPoll.IsZero() {
		status += ", polled " + m.lastPoll.Format("15:04:05")
	}
	if m.paused {
		status += "  PAUSED"
	}
	s.WriteString(valueStyle.Render(status) + "\n\n")

	if m.err != nil {
		s.WriteString(errStyle.Render(m.err.Error()) + "\n\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("Queue depth"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	header := fmt.Sprintf("%-10s %-20s %-12s %-9s %-6s %-12s",
		"JOBID", "NAME", "STATE", "TIME", "NODES", "PARTITION")
	s.WriteString(labelStyle.Render(header) + "\n")
	for _, j := range m.jobs {
		line := fmt.Sprintf("%-10s %-20s %-12s %-9s %-6s %-12s",
			j.ID, truncate(j.Name, 20), j.State, j.Time, j.Nodes, j.Partition)
		s.WriteString(stateStyle(j.State).Render(line) + "\n")
	}
	if len(m.jobs) == 0 && m.err == nil {
		s.WriteString(valueStyle.Render("queue is empty") + "\n")
	}

	s.WriteString(helpStyle.Render("q:quit  r:refresh  space:pause"))
	return s.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
