package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// sectionsCommand creates the sections command that lists the catalog.
func (c *CLI) sectionsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the configured sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			rows := make([][]string, len(cfg.Sections))
			for i, s := range cfg.Sections {
				rows[i] = []string{strconv.Itoa(i + 1), s.ID, s.Title, strconv.Itoa(len(s.Lines))}
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("#", "ID", "Title", "Lines").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return headerStyle
					case col == 1:
						return lipgloss.NewStyle().Foreground(colorCyan)
					case col == 0 || col == 3:
						return lipgloss.NewStyle().Foreground(colorDim)
					}
					return lipgloss.NewStyle().Foreground(colorWhite)
				})

			fmt.Println(t.Render())

			timings := cfg.Timings()
			printKeyValue("touch", timings.TouchDelay.String())
			printKeyValue("desktop", timings.DesktopDelay.String())
			printNextStep("Present them", "folio present")
			return nil
		},
	}

	addConfigFlag(cmd, &configPath)

	return cmd
}

