package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todos/internal/app"
	"github.com/idilsaglam/todos/internal/ui"
	"github.com/idilsaglam/todos/internal/view"
)

// Model is the Bubble Tea front end: a list of todos, an inline add bar and
// a blocking alert box.
type Model struct {
	ctx    context.Context
	ctrl   *app.Controller
	alerts *Alerts
	keys   keyMap

	list    list.Model
	spinner spinner.Model

	// Inline add
	adding  bool            // true when the add bar is open
	ti      textinput.Model // title input
	userIdx int             // index into the user options

	width, height int
}

func New(ctx context.Context, ctrl *app.Controller, alerts *Alerts) Model {
	keys := defaultKeys()

	l := list.New(nil, view.Delegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp
	// q is ours; the list would quit without letting us clean up
	l.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		alerts:  alerts,
		keys:    keys,
		list:    l,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		ti:      ti,
		width:   80,
		height:  24,
	}
	m.list.Title = m.title()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, ctrl *app.Controller, alerts *Alerts) error {
	p := tea.NewProgram(New(ctx, ctrl, alerts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.ctrl.Load(m.ctx), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ctrl.Handle(msg) {
		cmd := m.sync()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case spinner.TickMsg:
		if m.ctrl.Ready() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// an open alert swallows the next key
		if m.alerts.Current() != nil {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.alerts.Dismiss()
			return m, nil
		}
		if m.adding {
			return m.updateAdding(msg)
		}
		if m.list.FilterState() != list.Filtering {
			if model, cmd, ok := m.updateList(msg); ok {
				return model, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.ctrl.View().Options()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeAdd()
		return m, nil
	case key.Matches(msg, m.keys.NextUser):
		if len(options) > 0 {
			m.userIdx = (m.userIdx + 1) % len(options)
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevUser):
		if len(options) > 0 {
			m.userIdx = (m.userIdx - 1 + len(options)) % len(options)
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		userValue := ""
		if m.userIdx < len(options) {
			userValue = strconv.Itoa(options[m.userIdx].Value)
		}
		cmd := m.ctrl.Submit(m.ctx, userValue, m.ti.Value())
		if cmd == nil {
			return m, nil
		}
		m.closeAdd()
		return m, cmd
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Add):
		if !m.ctrl.Ready() {
			return m, nil, true
		}
		m.adding = true
		m.ti.SetValue("")
		cmd := m.ti.Focus()
		m.resize()
		return m, cmd, true
	case key.Matches(msg, m.keys.Reload):
		return m, m.ctrl.Load(m.ctx), true
	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.list.SelectedItem().(view.Item)
		if !ok {
			return m, nil, true
		}
		cmd := m.ctrl.Toggle(it.ID, !it.Checked)
		syncCmd := m.sync()
		return m, tea.Batch(cmd, syncCmd), true
	case key.Matches(msg, m.keys.Delete):
		it, ok := m.list.SelectedItem().(view.Item)
		if !ok {
			return m, nil, true
		}
		return m, m.ctrl.Delete(it.ID), true
	}
	return m, nil, false
}

func (m *Model) closeAdd() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// sync copies the rendered list into the bubbles list.
func (m *Model) sync() tea.Cmd {
	m.list.Title = m.title()
	return m.list.SetItems(m.ctrl.View().Items())
}

func (m *Model) title() string {
	done, pending := m.ctrl.View().Stats()
	return fmt.Sprintf("%s   %s", ui.Current().Title.Render("Todos"), ui.Counts(done, pending))
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h -= 4
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m Model) View() string {
	t := ui.Current()
	if !m.ctrl.Ready() {
		return ui.PanelString([]string{m.spinner.View() + " Loading todos..."})
	}

	content := m.list.View()
	if m.adding {
		content += "\n" + m.addBar()
	}
	if err := m.alerts.Current(); err != nil {
		box := lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1).
			Width(max(m.width-8, 20))
		content += "\n" + box.Render(t.Error.Render("Error")+"\n"+err.Error()+"\n"+t.Help.Render("press any key"))
	}
	return ui.PanelString([]string{content})
}

func (m Model) addBar() string {
	t := ui.Current()
	user := t.Muted.Render("no users")
	if options := m.ctrl.View().Options(); m.userIdx < len(options) {
		user = t.Accent.Render("‹ " + options[m.userIdx].Label + " ›")
	}
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	return bar.Render("Add new todo  user: " + user + "  " + t.Help.Render("tab switch user · enter save · esc cancel") + "\n" + m.ti.View())
}
