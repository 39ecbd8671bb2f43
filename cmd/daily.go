package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/vocaquiz/internal/assembly"
	"github.com/example/vocaquiz/internal/store"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily question set for a date and difficulty",
	Long: "Assembles the deterministic daily set: questions generated on the " +
		"date itself, backfilled from earlier days when needed. The same " +
		"date and difficulty always produce the same set in the same order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		dateStr, _ := cmd.Flags().GetString("date")
		answers, _ := cmd.Flags().GetBool("answers")
		markUsed, _ := cmd.Flags().GetBool("mark-used")

		if difficulty < 1 || difficulty > 3 {
			return fmt.Errorf("difficulty must be 1-3, got %d", difficulty)
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
		set, err := assembly.New(st.QuestionRepo()).Daily(ctx, day, difficulty)
		if errors.Is(err, assembly.ErrNoQuestions) {
			fmt.Printf("No questions available for %s at difficulty %d. Run `vocaquiz generate` first.\n",
				day.Format(assembly.DateFormat), difficulty)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Daily set for %s, difficulty %d (%d questions)\n",
			day.Format(assembly.DateFormat), difficulty, len(set))
		fmt.Println(strings.Repeat("─", 64))

		for i, q := range set {
			fmt.Printf("\nQ%d. %s\n", i+1, q.QuestionText)
			for j, choice := range q.Choices {
				fmt.Printf("  (%c) %s\n", 'A'+j, choice)
			}
			if answers {
				fmt.Printf("\n  Answer: (%c)\n", 'A'+q.CorrectIndex)
				if q.Translation != "" {
					fmt.Printf("  訳: %s\n", q.Translation)
				}
				fmt.Printf("  %s\n", indent(q.Explanation, "  "))
			}
		}

		if markUsed {
			ids := make([]int, len(set))
			for i, q := range set {
				ids[i] = q.ID
			}
			if err := st.QuestionRepo().IncrementUsage(ctx, ids); err != nil {
				return fmt.Errorf("mark questions used: %w", err)
			}
		}
		return nil
	},
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func init() {
	dailyCmd.Flags().IntP("difficulty", "l", 1, "Difficulty tier (1-3)")
	dailyCmd.Flags().StringP("date", "d", "", "Target date YYYY-MM-DD (default today)")
	dailyCmd.Flags().BoolP("answers", "a", false, "Show answers and explanations")
	dailyCmd.Flags().Bool("mark-used", false, "Increment usage counters for the shown questions")
}
