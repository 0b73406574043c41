package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/pantrypal/internal/controller"
	"github.com/jask/pantrypal/internal/session"
	"github.com/jask/pantrypal/internal/view"
)

func newApp(t *testing.T) (*App, *controller.App) {
	t.Helper()
	c, err := controller.Wire(controller.Deps{Session: session.New("")}, controller.Stores{})
	require.NoError(t, err)
	return New(c, nil), c
}

func key(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTabsSwitchRoutes(t *testing.T) {
	t.Parallel()
	a, c := newApp(t)
	require.Equal(t, view.Pantry, c.Views.CurrentRoute())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, view.ShoppingList, c.Views.CurrentRoute())
	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, view.Login, c.Views.CurrentRoute())
	a.Update(key("3"))
	require.Equal(t, view.Cookbook, c.Views.CurrentRoute())
	require.Contains(t, a.View(), "3 Cookbook")
	require.Contains(t, a.View(), "guest")
}

func TestQuitUnlessTyping(t *testing.T) {
	t.Parallel()
	a, c := newApp(t)
	_, cmd := a.Update(key("q"))
	require.True(t, isQuit(cmd))

	require.NoError(t, c.Views.SetView(view.Login))
	a.Update(key("l"))
	require.True(t, c.Views.Current().Capturing())
	_, cmd = a.Update(key("q"))
	require.False(t, isQuit(cmd))

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, isQuit(cmd))
}

func TestStatusLineShowsRejectedInput(t *testing.T) {
	t.Parallel()
	a, c := newApp(t)
	require.NoError(t, c.Views.SetView(view.ShoppingList))

	a.Update(key("a"))
	a.Update(key("egg -2"))
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Contains(t, a.View(), "quantity cannot be negative")

	a.Update(key("j"))
	require.NotContains(t, a.View(), "quantity cannot be negative")

	a.Update(Failure(errors.New("metrics listener stopped")))
	require.Contains(t, a.View(), "metrics listener stopped")
	a.Update(Notice("imported 2 recipes"))
	require.Contains(t, a.View(), "imported 2 recipes")
}

func TestLoginShowsUser(t *testing.T) {
	t.Parallel()
	a, c := newApp(t)
	require.NoError(t, c.Views.SetView(view.Login))
	require.Contains(t, a.View(), "Guest mode")
}
