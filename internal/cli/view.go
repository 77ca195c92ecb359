package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowshape/syntaxdiagrams/pkg/metric"
	"github.com/flowshape/syntaxdiagrams/pkg/render"
)

// viewCommand opens an interactive scrolling pager over the text-backend
// rendering of a diagram file.
func (c *CLI) viewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Interactively page through a diagram's text rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadDiagramFile(args[0])
			if err != nil {
				return reportLoadFailure(c.Logger, err)
			}

			settings := metric.DefaultSettings()
			if configPath != "" {
				loaded, err := loadSettingsFile(configPath)
				if err != nil {
					return err
				}
				settings = loaded
			}

			grid, err := render.Text(tree, settings)
			if err != nil {
				return reportLoadFailure(c.Logger, err)
			}

			p := tea.NewProgram(newPagerModel(args[0], grid))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML settings file, as printed by the config command")
	return cmd
}

// pagerModel is a bubbletea model for scrolling through a fixed block of
// pre-rendered text (the character-grid diagram) one line at a time.
type pagerModel struct {
	title  string
	lines  []string
	offset int
	height int
}

func newPagerModel(title, body string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  strings.Split(body, "\n"),
		height: 20,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "pgup":
			m.offset -= m.height
			if m.offset < 0 {
				m.offset = 0
			}
		case "pgdown":
			m.offset += m.height
			if max := m.maxOffset(); m.offset > max {
				m.offset = max
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m pagerModel) maxOffset() int {
	if len(m.lines) <= m.height {
		return 0
	}
	return len(m.lines) - m.height
}

func (m pagerModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  pgup/pgdn page  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("\n[%d-%d/%d]", m.offset+1, end, len(m.lines))))
	return b.String()
}
