package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/ui/theme"
)

// OrderArranger lets the user rearrange items into a sequence. The
// arrangement holds 0-based indices into the original item list, in display
// order, which is exactly the shape an ordering answer takes.
type OrderArranger struct {
	Items       []string
	Arrangement []int
	Cursor      int

	// Done is set once the user submits; Sequence is the final arrangement.
	Done     bool
	Sequence []int
}

// NewOrderArranger starts with the items in their presented order.
func NewOrderArranger(items []string) OrderArranger {
	arr := make([]int, len(items))
	for i := range arr {
		arr[i] = i
	}
	return OrderArranger{Items: items, Arrangement: arr}
}

// Update handles cursor movement (j/k), item movement (J/K), and submit.
func (o OrderArranger) Update(msg tea.Msg) (OrderArranger, tea.Cmd) {
	if o.Done {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Arrangement)-1 {
			o.Cursor++
		}
	case "K", "shift+up":
		if o.Cursor > 0 {
			o.Arrangement[o.Cursor-1], o.Arrangement[o.Cursor] = o.Arrangement[o.Cursor], o.Arrangement[o.Cursor-1]
			o.Cursor--
		}
	case "J", "shift+down":
		if o.Cursor < len(o.Arrangement)-1 {
			o.Arrangement[o.Cursor+1], o.Arrangement[o.Cursor] = o.Arrangement[o.Cursor], o.Arrangement[o.Cursor+1]
			o.Cursor++
		}
	case "enter":
		o.Done = true
		o.Sequence = append([]int(nil), o.Arrangement...)
	}

	return o, nil
}

// View renders the current arrangement.
func (o OrderArranger) View() string {
	var s string
	for pos, idx := range o.Arrangement {
		line := fmt.Sprintf("  %d. %s", pos+1, o.Items[idx])
		if pos == o.Cursor && !o.Done {
			s += theme.Selected.Render("▸"+line[1:]) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
