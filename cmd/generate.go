package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/vocaquiz/internal/assembly"
	"github.com/example/vocaquiz/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions for a date and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		dateStr, _ := cmd.Flags().GetString("date")

		if difficulty < 1 || difficulty > 3 {
			return fmt.Errorf("difficulty must be 1-3, got %d", difficulty)
		}
		if count < 1 || count > 100 {
			return fmt.Errorf("count must be 1-100, got %d", count)
		}

		day := time.Now()
		if dateStr != "" {
			var err error
			day, err = time.Parse(assembly.DateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
			}
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

		ctx := context.Background()
		dayKey := day.Format(assembly.DateFormat)

		existing, err := st.QuestionRepo().CountOn(ctx, dayKey, difficulty)
		if err != nil {
			return fmt.Errorf("count existing questions: %w", err)
		}
		if existing > 0 {
			fmt.Printf("Note: %d questions already exist for %s at difficulty %d.\n",
				existing, dayKey, difficulty)
		}

		fmt.Printf("Generating %d questions for %s at difficulty %d...\n", count, dayKey, difficulty)

		outcome, err := runGenerationBatch(ctx, st, difficulty, count, day)
		if err != nil {
			return err
		}
		printOutcome(outcome)
		return nil
	},
}

func printOutcome(o *batchOutcome) {
	r := o.Result

	fmt.Println()
	for _, item := range r.Items {
		if item.Err != nil {
			fmt.Printf("  ✗ %-20s %v\n", item.Word, item.Err)
			continue
		}
		marker := ""
		if item.Draft.Repair.Repaired {
			marker = " (index corrected)"
		}
		fmt.Printf("  ✓ %-20s%s\n", item.Word, marker)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("Batch:     %s\n", o.BatchID)
	fmt.Printf("Status:    %s\n", r.Status())
	fmt.Printf("Questions: %d succeeded, %d failed of %d\n", r.Succeeded, r.Failed, r.Requested)
	fmt.Printf("Model:     %s\n", o.Model)
	fmt.Printf("Tokens:    %d in / %d out\n", r.Usage.InputTokens, r.Usage.OutputTokens)
	fmt.Printf("Cost:      %s\n", formatCost(o.Cost))
}

func init() {
	generateCmd.Flags().IntP("difficulty", "l", 1, "Difficulty tier (1-3)")
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions to generate (1-100)")
	generateCmd.Flags().StringP("date", "d", "", "Target date YYYY-MM-DD (default today)")
}
