package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/errors"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// sampleSize is how many values the picker previews per column.
const sampleSize = 3

// =============================================================================
// ColumnPickerModel - Interactive column selection
// =============================================================================

// ColumnInfo describes one selectable column.
type ColumnInfo struct {
	Name   string
	Kind   column.Kind
	Sample string
}

// ColumnPickerModel is the bubbletea model for interactive column selection.
type ColumnPickerModel struct {
	Prompt    string
	Columns   []ColumnInfo
	Cursor    int
	Selected  *ColumnInfo
	Cancelled bool
	Height    int
	Offset    int
}

// NewColumnPickerModel creates a picker over the columns of t.
func NewColumnPickerModel(prompt string, t *column.Table) ColumnPickerModel {
	infos := make([]ColumnInfo, 0, t.NumCols())
	for _, c := range t.Columns() {
		infos = append(infos, ColumnInfo{Name: c.Name(), Kind: c.Kind(), Sample: sample(c)})
		c.Release()
	}
	return ColumnPickerModel{Prompt: prompt, Columns: infos, Height: 15}
}

func sample(c *column.Column) string {
	vals := c.Values()
	if len(vals) > sampleSize {
		vals = vals[:sampleSize]
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		if v == nil {
			parts[i] = "∅"
			continue
		}
		parts[i] = fmt.Sprint(v)
	}
	s := strings.Join(parts, ", ")
	if c.Len() > sampleSize {
		s += ", …"
	}
	return s
}

func (m ColumnPickerModel) Init() tea.Cmd {
	return nil
}

func (m ColumnPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Columns)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Columns) == 0 {
				return m, nil
			}
			c := m.Columns[m.Cursor]
			m.Selected = &c
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ColumnPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Prompt))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Columns) {
		end = len(m.Columns)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Columns[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, c.Name, c.Kind.String(), c.Sample})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Column", "Kind", "Sample").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Columns) {
				return lipgloss.NewStyle()
			}
			c := m.Columns[idx]
			base := lipgloss.NewStyle()
			if c.Kind == column.KindUnsupported {
				base = base.Foreground(colorDim)
			} else if col == 2 {
				base = base.Foreground(colorGray)
			}
			if idx == m.Cursor {
				if c.Kind == column.KindUnsupported {
					return base.Bold(true)
				}
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Columns))))

	return b.String()
}

// pickColumn runs the picker and returns the chosen column name.
func pickColumn(t *column.Table, prompt string) (string, error) {
	final, err := tea.NewProgram(NewColumnPickerModel(prompt, t)).Run()
	if err != nil {
		return "", fmt.Errorf("column picker: %w", err)
	}
	m := final.(ColumnPickerModel)
	if m.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no column selected")
	}
	return m.Selected.Name, nil
}
