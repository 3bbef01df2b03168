package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filePaneWidth = 32

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).PaddingRight(1)
)

type model struct {
	cfg      appConfig
	files    []string
	cursor   int
	viewport viewport.Model
	input    textinput.Model
	editing  bool
	showCS   bool
	lastCS   string
	log      []string
	status   string
	building bool
	events   <-chan tea.Msg
	ready    bool
	width    int
	height   int
}

func newModel(cfg appConfig) model {
	vp := viewport.New(80, 20)
	ti := textinput.New()
	ti.Prompt = "class name: "
	ti.SetValue(cfg.className)
	ti.CharLimit = 64

	m := model{
		cfg:      cfg,
		viewport: vp,
		input:    ti,
		status:   "ready",
	}
	m.refreshFiles()
	return m
}

func (m *model) refreshFiles() {
	files, err := listNovaFiles(m.cfg.srcDir)
	if err != nil {
		m.appendLog(fmt.Sprintf("list %s: %v", m.cfg.srcDir, err), true)
		return
	}
	m.files = files
	if m.cursor >= len(m.files) {
		m.cursor = 0
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vw := msg.Width - filePaneWidth - 2
		if vw < 10 {
			vw = 10
		}
		vh := msg.Height - 4
		if vh < 1 {
			vh = 1
		}
		m.viewport.Width = vw
		m.viewport.Height = vh
		m.ready = true
		m.rebuildContent()
		return m, nil

	case buildStartedMsg:
		m.events = msg.events
		m.building = true
		m.status = "building"
		return m, waitBuildEvent(m.events)

	case buildLogMsg:
		m.appendLog(msg.line, msg.isErr)
		return m, waitBuildEvent(m.events)

	case buildCodeMsg:
		m.lastCS = msg.code
		return m, waitBuildEvent(m.events)

	case buildDoneMsg:
		m.building = false
		m.events = nil
		if msg.ok {
			m.status = "done"
		} else {
			m.status = "failed"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				m.cfg.className = v
			}
			m.editing = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.editing = false
			m.input.Blur()
			m.input.SetValue(m.cfg.className)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.building || len(m.files) == 0 {
			return m, nil
		}
		m.showCS = false
		file := m.files[m.cursor]
		m.appendLog("compile "+file, false)
		return m, startBuild(m.cfg, file)
	case "r":
		m.refreshFiles()
		m.status = "refreshed"
		return m, nil
	case "n":
		m.editing = true
		m.input.Focus()
		return m, nil
	case "c":
		m.showCS = !m.showCS && m.lastCS != ""
		m.rebuildContent()
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}

	var left strings.Builder
	left.WriteString(titleStyle.Render("nova compiler") + "\n")
	if len(m.files) == 0 {
		left.WriteString(statusStyle.Render("(no .nova files)"))
	}
	for i, f := range m.files {
		name := " " + f
		if i == m.cursor {
			name = selectStyle.Render(">" + f)
		}
		left.WriteString(name + "\n")
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		paneStyle.Width(filePaneWidth).Render(left.String()),
		m.viewport.View(),
	)

	footer := statusStyle.Render(fmt.Sprintf("[%s] class=%s target=%s", m.status, m.cfg.className, m.cfg.target))
	if m.editing {
		footer = m.input.View()
	}
	help := statusStyle.Render("enter compile · c generated C# · n class name · r refresh · q quit")

	return body + "\n" + footer + "\n" + help
}

func (m *model) appendLog(line string, isErr bool) {
	if isErr {
		line = errStyle.Render(line)
	}
	m.log = append(m.log, line)
	m.showCS = false
	m.rebuildContent()
}

func (m *model) rebuildContent() {
	if m.showCS {
		m.viewport.SetContent(m.lastCS)
		m.viewport.GotoTop()
		return
	}
	content := strings.Join(m.log, "\n")
	if content == "" {
		content = "(no output yet)"
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
