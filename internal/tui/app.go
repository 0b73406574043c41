// Package tui hosts the views in a bubbletea program.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pantrypal/internal/controller"
	"github.com/jask/pantrypal/internal/view"
)

// App is the root bubbletea model. Every controller call happens inside
// Update, on the program's event loop.
type App struct {
	app    *controller.App
	log    *slog.Logger
	width  int
	status string
	failed bool
}

type statusMsg string

type errMsg struct{ error }

// Notice is a message that shows s in the status line.
func Notice(s string) tea.Msg { return statusMsg(s) }

// Failure is a message that shows err in the status line.
func Failure(err error) tea.Msg { return errMsg{err} }

func New(app *controller.App, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{app: app, log: log, width: 80}
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("PantryPal")
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case statusMsg:
		a.status, a.failed = string(m), false
	case errMsg:
		a.status, a.failed = m.Error(), true
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	views := a.app.Views
	cur := views.Current()
	if m.Type == tea.KeyCtrlC || cur == nil {
		return a, tea.Quit
	}
	if !cur.Capturing() {
		switch s := m.String(); s {
		case "q":
			return a, tea.Quit
		case "tab":
			views.Step(1)
			return a, nil
		case "shift+tab":
			views.Step(-1)
			return a, nil
		case "1", "2", "3", "4":
			routes := views.Routes()
			if i := int(s[0] - '1'); i < len(routes) {
				_ = views.SetView(routes[i])
			}
			return a, nil
		}
	}
	cmd, err := cur.HandleKey(m)
	if err != nil {
		a.log.Info("action rejected", "route", string(cur.Route()), "key", m.String(), "error", err)
		a.status, a.failed = err.Error(), true
	} else if a.failed {
		a.status, a.failed = "", false
	}
	return a, cmd
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Reverse(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (a *App) View() string {
	views := a.app.Views
	var tabs []string
	for i, r := range views.Routes() {
		v, _ := views.View(r)
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if r == views.CurrentRoute() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	user := "guest"
	if a.app.Login != nil {
		if name := a.app.Login.UserName(); name != "" {
			user = name
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + helpStyle.Render("  "+user)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	cur := views.Current()
	if cur == nil {
		return b.String()
	}
	b.WriteString(cur.View(a.width) + "\n")
	b.WriteString(helpStyle.Render(footer(cur.Help())))
	if a.status != "" {
		status := a.status
		if a.failed {
			status = errorStyle.Render(status)
		}
		b.WriteString("\n" + status)
	}
	return b.String()
}

func footer(help []view.HelpEntry) string {
	parts := make([]string, 0, len(help)+2)
	for _, h := range help {
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	parts = append(parts, "[tab] switch", "[q] quit")
	return strings.Join(parts, "  ")
}
