package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"brilcheck/internal/bril"
	"brilcheck/internal/brilcheck/styles"
	"brilcheck/internal/ui/colorize"
)

type viewMode int

const (
	viewSummary viewMode = iota
	viewFunctions
	viewBody
)

type functionItem struct {
	index  int
	name   string
	instrs int
}

func (i functionItem) FilterValue() string { return i.name }

// Custom item delegate for the functions list
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(functionItem)
	if !ok {
		return
	}

	indicator := " "
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	if index == m.Index() {
		indicator = ">"
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	}
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Names come straight from the file; escape sequences in them must not
	// reach the terminal.
	fmt.Fprintf(w, " %s  %s  %s",
		indicator,
		nameStyle.Render(colorize.StripANSI(i.name)),
		countStyle.Render(fmt.Sprintf("%d instruction(s)", i.instrs)))
}

type browseModel struct {
	viewport      viewport.Model
	functionsList list.Model
	spinner       spinner.Model
	mode          viewMode
	path          string
	prog          *bril.Program
	err           error
	loading       bool
	width         int
	height        int
}

type programLoadedMsg struct {
	prog *bril.Program
	err  error
}

func loadProgramCmd(path string) tea.Cmd {
	return func() tea.Msg {
		prog, err := bril.Load(path)
		return programLoadedMsg{prog: prog, err: err}
	}
}

func newBrowseModel(path string) browseModel {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(22)

	functionsList := list.New([]list.Item{}, itemDelegate{}, 80, 22)
	functionsList.SetShowStatusBar(false)
	functionsList.SetFilteringEnabled(true)
	functionsList.Title = "Functions"
	functionsList.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		MarginLeft(2)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	m := browseModel{
		viewport:      vp,
		functionsList: functionsList,
		spinner:       s,
		mode:          viewSummary,
		path:          path,
		loading:       true,
		width:         80,
		height:        24,
	}
	m.updateContent()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(
		loadProgramCmd(m.path),
		m.spinner.Tick,
	)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case programLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.setProgram(msg.prog)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		m.updateContent()
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.mode == viewFunctions && m.functionsList.FilterState() == list.Filtering {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.mode = viewSummary
			m.updateContent()
			return m, nil
		case "f":
			if m.prog != nil {
				m.mode = viewFunctions
			}
			return m, nil
		case "esc", "backspace":
			if m.mode == viewBody {
				m.mode = viewFunctions
			}
			return m, nil
		case "enter":
			if m.mode == viewFunctions {
				m.openSelected()
			}
			return m, nil
		case "tab":
			m.cycle()
			return m, nil
		}
	}

	switch m.mode {
	case viewFunctions:
		m.functionsList, cmd = m.functionsList.Update(msg)
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m browseModel) View() string {
	var content string
	var menu string
	switch m.mode {
	case viewFunctions:
		content = m.functionsList.View()
		menu = " Enter: view body • S: summary • Tab: cycle • Q: quit "
	case viewBody:
		content = m.viewport.View()
		menu = " Esc: functions • S: summary • Tab: cycle • Q: quit "
	default:
		content = m.viewport.View()
		if m.prog != nil {
			menu = " F: functions • Tab: cycle • Q: quit "
		} else {
			menu = " Q: quit "
		}
	}

	menuStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		Width(m.width)

	return content + "\n" + menuStyle.Render(menu)
}

func (m *browseModel) setProgram(prog *bril.Program) {
	m.prog = prog

	items := make([]list.Item, 0, len(prog.Functions))
	for i, fn := range prog.Functions {
		items = append(items, functionItem{
			index:  i,
			name:   fn.Name,
			instrs: len(fn.Instrs),
		})
	}
	m.functionsList.SetItems(items)
	m.functionsList.Title = fmt.Sprintf("Functions (%d total)", len(items))
	m.updateContent()
}

func (m *browseModel) resize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height - 2)
	m.functionsList.SetWidth(width)
	m.functionsList.SetHeight(height - 2)
	if m.mode != viewBody {
		m.updateContent()
	}
}

func (m *browseModel) cycle() {
	if m.prog == nil {
		return
	}
	switch m.mode {
	case viewSummary:
		m.mode = viewFunctions
	case viewFunctions:
		m.openSelected()
	case viewBody:
		m.mode = viewSummary
		m.updateContent()
	}
}

// openSelected shows the body of the highlighted function.
func (m *browseModel) openSelected() {
	item, ok := m.functionsList.SelectedItem().(functionItem)
	if !ok || m.prog == nil {
		return
	}
	fn := m.prog.Functions[item.index]

	body, err := renderFunction(m.prog, fn.Name, false)
	if err != nil {
		slog.Error("Failed to render function", "function", fn.Name, "error", err)
		return
	}
	if colored, err := colorize.ColorizeJSON(body); err == nil {
		body = colored
	}

	m.mode = viewBody
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

// updateContent refreshes the summary view.
func (m *browseModel) updateContent() {
	var markdown string
	switch {
	case m.loading:
		markdown = fmt.Sprintf("# %s\n\n%s Loading...", escapeMarkdown(m.path), m.spinner.View())
	case m.prog != nil:
		markdown = buildReport(m.path, m.prog)
	default:
		markdown = fmt.Sprintf("# %s", escapeMarkdown(m.path))
	}

	if !LoadConfig().NoColor {
		width := m.width
		if width == 0 {
			width = 80
		}
		if rendered, err := styles.RenderMarkdown(markdown, width-2); err == nil {
			markdown = strings.TrimSuffix(rendered, "\n")
		}
	}
	m.viewport.SetContent(markdown)
}

// runBrowse runs the interactive browser until the user quits. A load
// failure ends the program and is returned unchanged.
func runBrowse(ctx context.Context, path string) error {
	program := tea.NewProgram(
		newBrowseModel(path),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		slog.Error("TUI run error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	if m, ok := final.(browseModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
