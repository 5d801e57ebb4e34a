package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"repodeck.dev/repodeck/internal/config"
	"repodeck.dev/repodeck/internal/engine"
)

const maxLogLines = 200

// notificationMsg wraps an engine notification for the bubbletea loop.
type notificationMsg engine.Notification

// repoItem is one roster entry in the repository list.
type repoItem struct {
	path string
}

func (i repoItem) Title() string       { return filepath.Base(i.path) }
func (i repoItem) Description() string { return i.path }
func (i repoItem) FilterValue() string { return i.path }

type keyMap struct {
	Status  key.Binding
	Pull    key.Binding
	PullAll key.Binding
	Stage   key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Status:  key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "status")),
	Pull:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pull")),
	PullAll: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pull all")),
	Stage:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "stage all")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type styles struct {
	title lipgloss.Style
	log   lipgloss.Style
	err   lipgloss.Style
	dim   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		log:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Model is the dashboard's bubbletea model.
type Model struct {
	cfg        *config.Config
	dispatcher *engine.Dispatcher
	updates    <-chan engine.Notification

	repos    list.Model
	logLines []string
	styles   styles
	width    int
	height   int
}

func newModel(cfg *config.Config, dispatcher *engine.Dispatcher, updates <-chan engine.Notification) Model {
	items := []list.Item{}
	for _, repo := range cfg.Repos() {
		items = append(items, repoItem{path: repo})
	}

	repoList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	repoList.Title = "repositories"
	repoList.SetShowStatusBar(false)
	repoList.SetFilteringEnabled(false)

	return Model{
		cfg:        cfg,
		dispatcher: dispatcher,
		updates:    updates,
		repos:      repoList,
		styles:     newStyles(),
	}
}

// Init starts listening for engine notifications.
func (m Model) Init() tea.Cmd {
	return m.waitForNotification()
}

func (m Model) waitForNotification() tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(<-m.updates)
	}
}

// Update handles key presses and engine notifications.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.repos.SetSize(msg.Width, msg.Height/2)
		return m, nil

	case notificationMsg:
		m.appendLog(engine.Notification(msg))
		return m, m.waitForNotification()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Status):
			m.submitSelected(engine.KindStatus, nil)
			return m, nil
		case key.Matches(msg, keys.Pull):
			m.submitSelected(engine.KindPull, nil)
			return m, nil
		case key.Matches(msg, keys.Stage):
			m.submitSelected(engine.KindStage, nil)
			return m, nil
		case key.Matches(msg, keys.PullAll):
			for _, repo := range m.cfg.Repos() {
				m.submit(repo, engine.KindPull, nil)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.repos, cmd = m.repos.Update(msg)
	return m, cmd
}

func (m *Model) submitSelected(kind engine.Kind, args engine.Args) {
	item, ok := m.repos.SelectedItem().(repoItem)
	if !ok {
		return
	}
	m.submit(item.path, kind, args)
}

func (m *Model) submit(repo string, kind engine.Kind, args engine.Args) {
	err := m.dispatcher.Submit(&engine.Request{RepoPath: repo, Kind: kind, Args: args})
	if err != nil {
		m.pushLine(m.styles.err.Render(fmt.Sprintf("%s %s: %v", filepath.Base(repo), kind, err)))
		return
	}
	m.pushLine(m.styles.dim.Render(fmt.Sprintf("%s %s: submitted", filepath.Base(repo), kind)))
}

func (m *Model) appendLog(n engine.Notification) {
	name := filepath.Base(n.RepoPath)
	switch {
	case n.Failure != nil:
		m.pushLine(m.styles.err.Render(fmt.Sprintf("%s %s: %s", name, n.Kind, n.Failure.Code)))
	case n.Result != nil:
		m.pushLine(fmt.Sprintf("%s %s: %s", name, n.Kind, summarizeResult(n.Result)))
	default:
		m.pushLine(m.styles.dim.Render(fmt.Sprintf("%s %s: %s", name, n.Kind, n.Progress)))
	}
}

func (m *Model) pushLine(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

// formatNotification renders one notification as a plain, style-free line for
// the rotating operation log.
func formatNotification(n engine.Notification) string {
	name := filepath.Base(n.RepoPath)
	switch {
	case n.Failure != nil:
		return fmt.Sprintf("%s %s: %s: %v", name, n.Kind, n.Failure.Code, n.Failure.Err)
	case n.Result != nil:
		return fmt.Sprintf("%s %s: %s", name, n.Kind, summarizeResult(n.Result))
	default:
		return fmt.Sprintf("%s %s: %s", name, n.Kind, n.Progress)
	}
}

// summarizeResult renders one terminal result as a single log line.
func summarizeResult(result engine.Result) string {
	switch r := result.(type) {
	case engine.StatusResult:
		if len(r.Entries) == 0 {
			return "clean"
		}
		return fmt.Sprintf("%d changed paths", len(r.Entries))
	case engine.LogResult:
		return fmt.Sprintf("%d commits", len(r.Commits))
	case engine.BranchesResult:
		return fmt.Sprintf("%d local, %d remote branches", len(r.Branches.Local), len(r.Branches.Remote))
	case engine.DiffResult:
		return fmt.Sprintf("%d bytes of diff", len(r.Text))
	case engine.ShowCommitResult:
		return fmt.Sprintf("%s: %d files", r.Detail.Commit.ShortHash, len(r.Detail.Files))
	case engine.Confirmation:
		return r.Text
	default:
		return "done"
	}
}

// View renders the repo list above the scrolling operation log.
func (m Model) View() string {
	logHeight := m.height - m.height/2 - 4
	if logHeight < 3 {
		logHeight = 3
	}

	lines := m.logLines
	if len(lines) > logHeight {
		lines = lines[len(lines)-logHeight:]
	}
	logView := m.styles.log.Width(max(m.width-2, 20)).Render(joinLines(lines, logHeight))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.repos.View(),
		m.styles.title.Render(" activity "),
		logView,
	)
}

func joinLines(lines []string, height int) string {
	out := ""
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out += lines[i]
		}
		if i < height-1 {
			out += "\n"
		}
	}
	return out
}
