package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/vocaquiz/internal/store"
	"github.com/example/vocaquiz/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage the vocabulary inventory",
}

var vocabImportCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import vocabulary from a spreadsheet",
	Long: "Imports rows from the first sheet of an .xlsx file. Expected " +
		"columns: word, kind (WORD/IDIOM), difficulty (1-3), meaning, " +
		"part of speech, example. The first row is treated as a header. " +
		"Entries already present (same word and kind, case-insensitive) " +
		"are skipped.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		result, err := vocab.ImportXLSX(context.Background(), st.VocabRepo(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Processed %d rows: %d created, %d skipped.\n",
			result.Processed, result.Created, result.Skipped)
		for _, msg := range result.Errors {
			fmt.Printf("  ! %s\n", msg)
		}
		return nil
	},
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		kindStr, _ := cmd.Flags().GetString("kind")
		limit, _ := cmd.Flags().GetInt("limit")

		var kind vocab.Kind
		switch strings.ToUpper(kindStr) {
		case "":
		case "WORD":
			kind = vocab.KindWord
		case "IDIOM":
			kind = vocab.KindIdiom
		default:
			return fmt.Errorf("invalid kind %q (want WORD or IDIOM)", kindStr)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		items, err := st.VocabRepo().List(context.Background(), difficulty, kind, limit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No vocabulary entries found.")
			return nil
		}

		fmt.Printf("%-5s  %-24s  %-6s  %-3s  %s\n", "ID", "Word", "Kind", "Lv", "Meaning")
		fmt.Println(strings.Repeat("─", 72))
		for _, it := range items {
			fmt.Printf("%-5d  %-24s  %-6s  %-3d  %s\n",
				it.ID, truncate(it.Word, 24), it.Kind, it.Difficulty, it.Meaning)
		}
		return nil
	},
}

func init() {
	vocabListCmd.Flags().IntP("difficulty", "l", 0, "Filter by difficulty tier (1-3)")
	vocabListCmd.Flags().StringP("kind", "k", "", "Filter by kind (WORD or IDIOM)")
	vocabListCmd.Flags().IntP("limit", "n", 50, "Number of entries to show (0 = all)")

	vocabCmd.AddCommand(vocabImportCmd)
	vocabCmd.AddCommand(vocabListCmd)
}
