package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/thrones/pkg/data"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search characters by name",
	Long:  "Fetch the character list and print the characters whose name contains the query (case-insensitive)",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		result := current.controller.Search(cmd.Context(), query)
		if err := checkResult(result); err != nil {
			return err
		}

		if len(result.Characters) == 0 {
			fmt.Println("No characters match your search.")
			return nil
		}

		fmt.Println(renderCharacterTable(result.Characters))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func renderCharacterTable(characters []data.Character) *table.Table {
	var (
		gold = lipgloss.Color("#E8C872")

		headerStyle = lipgloss.NewStyle().Foreground(gold).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(gold)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Name", "Culture", "Born", "Died", "Seasons")

	for i, c := range characters {
		t.Row(
			fmt.Sprintf("%d", i+1),
			truncateString(orDash(c.Name), 32),
			truncateString(orDash(c.Culture), 20),
			truncateString(orDash(c.Born), 28),
			truncateString(orDash(c.Died), 28),
			orDash(data.SeasonNumerals(c.TVSeries)),
		)
	}

	return t
}
