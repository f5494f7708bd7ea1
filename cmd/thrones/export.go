package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kerbaras/thrones/pkg/config"
	"github.com/kerbaras/thrones/pkg/data"
	"github.com/kerbaras/thrones/pkg/integrations"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.duckdb]",
	Short: "Write a snapshot of the character list to DuckDB",
	Long: `Fetch the character list and store it in the "characters" table of a DuckDB file.

The snapshot is for offline analysis only; thrones always reads from the API.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(config.Home(), "characters.duckdb")
		if len(args) == 1 {
			path = args[0]
		}

		result := current.controller.FetchCharacters(cmd.Context())
		if err := checkResult(result); err != nil {
			return err
		}

		repo, err := data.NewDuckDBRepository(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer repo.Close()

		if err := repo.SaveSnapshot(cmd.Context(), result.Characters); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		count, err := repo.Count(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d characters to %s\n", count, path)
		return nil
	},
}

var epubCmd = &cobra.Command{
	Use:   "epub [query]",
	Short: "Compile characters into an EPUB compendium",
	Long:  "Fetch the character list, optionally filter it by name, and write one EPUB section per character",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		output, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")

		result := current.controller.Search(cmd.Context(), query)
		if err := checkResult(result); err != nil {
			return err
		}

		if title == "" {
			title = "Game of Thrones Characters"
			if query != "" {
				title = fmt.Sprintf("Game of Thrones Characters - %s", query)
			}
		}

		path, err := integrations.NewCompendium(output).Create(title, result.Characters)
		if err != nil {
			return err
		}

		fmt.Printf("EPUB created: %s (%d characters)\n", path, len(result.Characters))
		return nil
	},
}

func init() {
	epubCmd.Flags().StringP("output", "o", ".", "Output directory")
	epubCmd.Flags().StringP("title", "t", "", "Book title")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(epubCmd)
}
