package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every character",
	Long:  "Fetch the character list and display it in a formatted table, including aliases and actors",
	RunE: func(cmd *cobra.Command, args []string) error {
		result := current.controller.FetchCharacters(cmd.Context())
		if err := checkResult(result); err != nil {
			return err
		}

		if len(result.Characters) == 0 {
			fmt.Println("No characters returned by the API.")
			return nil
		}

		columns := []table.Column{
			{Title: "Name", Width: 30},
			{Title: "Gender", Width: 8},
			{Title: "Culture", Width: 16},
			{Title: "Aliases", Width: 30},
			{Title: "Played By", Width: 24},
		}

		rows := make([]table.Row, 0, len(result.Characters))
		for _, c := range result.Characters {
			rows = append(rows, table.Row{
				truncateString(orDash(c.Name), 28),
				orDash(c.Gender),
				truncateString(orDash(c.Culture), 14),
				truncateString(joinOrDash(c.Aliases), 28),
				truncateString(joinOrDash(c.PlayedBy), 22),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\nGame of Thrones (%d characters)\n\n", len(result.Characters))
		fmt.Println(t.View())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
