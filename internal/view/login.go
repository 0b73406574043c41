package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pantrypal/internal/observer"
)

// LoginView shows who is logged in and lets the user switch.
type LoginView struct {
	observer.Observable
	login  key.Binding
	logout key.Binding
	user   string
	prompt prompt
}

func NewLoginView() *LoginView {
	return &LoginView{
		login:  key.NewBinding(key.WithKeys("l", "enter"), key.WithHelp("l", "log in")),
		logout: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
	}
}

func (v *LoginView) Route() Route  { return Login }
func (v *LoginView) Title() string { return "Account" }

// Render shows user as the current login; empty means guest.
func (v *LoginView) Render(user string) { v.user = user }

func (v *LoginView) Capturing() bool { return v.prompt.active }

func (v *LoginView) HandleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	if v.prompt.active {
		return v.prompt.handle(msg)
	}
	switch {
	case key.Matches(msg, v.login):
		return v.prompt.open("Log in", "username", "", func(s string) error {
			return v.Notify(observer.LogIn, s)
		}), nil
	case key.Matches(msg, v.logout) && v.user != "":
		return nil, v.NotifySignal(observer.LogOut)
	}
	return nil, nil
}

func (v *LoginView) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Account") + "\n")
	if v.user == "" {
		b.WriteString("Guest mode: nothing is saved.\n")
	} else {
		b.WriteString("Logged in as " + selectedStyle.Render(v.user) + ". Changes are saved.\n")
	}
	if v.prompt.active {
		b.WriteString("\n" + v.prompt.view())
	}
	return b.String()
}

func (v *LoginView) Help() []HelpEntry { return helpOf(v.login, v.logout) }
