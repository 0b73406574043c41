package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pantrypal/internal/errs"
)

// prompt is a one-line text input shown over a view.
type prompt struct {
	input  textinput.Model
	label  string
	active bool
	submit func(string) error
}

func (p *prompt) open(label, placeholder, value string, submit func(string) error) tea.Cmd {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.SetValue(value)
	p.input, p.label, p.active, p.submit = in, label, true, submit
	return tea.Batch(p.input.Focus(), textinput.Blink)
}

func (p *prompt) close() {
	p.active = false
	p.submit = nil
	p.input.Blur()
}

func (p *prompt) handle(msg tea.KeyMsg) (tea.Cmd, error) {
	switch msg.Type {
	case tea.KeyEnter:
		value, submit := strings.TrimSpace(p.input.Value()), p.submit
		p.close()
		if submit == nil || value == "" {
			return nil, nil
		}
		return nil, submit(value)
	case tea.KeyEsc:
		p.close()
		return nil, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd, nil
}

func (p *prompt) view() string {
	return promptStyle.Render(p.label + "\n" + p.input.View() + "\n" + mutedStyle.Render("[enter] save  [esc] cancel"))
}

// groceryInput is what a user typed for a grocery line.
type groceryInput struct {
	Name     string
	Quantity int
	Unit     string
	Shelf    string
}

// parseGrocery reads "name [qty [unit]] [@shelf]". The name may contain
// spaces; quantity defaults to 1 and unit to "pcs".
func parseGrocery(s string) (groceryInput, error) {
	left, shelf, _ := strings.Cut(s, "@")
	in := groceryInput{Quantity: 1, Unit: "pcs", Shelf: strings.TrimSpace(shelf)}
	fields := strings.Fields(left)
	n := len(fields)
	switch {
	case n >= 3 && isInt(fields[n-2]):
		in.Quantity, _ = strconv.Atoi(fields[n-2])
		in.Unit = fields[n-1]
		fields = fields[:n-2]
	case n >= 2 && isInt(fields[n-1]):
		in.Quantity, _ = strconv.Atoi(fields[n-1])
		fields = fields[:n-1]
	}
	in.Name = strings.Join(fields, " ")
	if in.Name == "" {
		return groceryInput{}, errs.Invalid("grocery name is required")
	}
	if in.Quantity < 0 {
		return groceryInput{}, errs.Invalid("quantity cannot be negative")
	}
	return in, nil
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
