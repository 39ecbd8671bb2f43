package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/vocaquiz/internal/store"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect the generation ledger",
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generation batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		entries, err := st.LedgerRepo().List(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No generation batches recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-10s  %-2s  %-8s  %-9s  %-9s  %s\n",
			"Created", "Date", "Lv", "Status", "OK/Fail", "Cost", "Batch")
		fmt.Println(strings.Repeat("─", 92))
		for _, e := range entries {
			fmt.Printf("%-19s  %-10s  %-2d  %-8s  %4d/%-4d  %-9s  %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Date, e.Difficulty, e.Status,
				e.Succeeded, e.Failed,
				formatCost(e.TotalCost),
				e.BatchID)
		}
		return nil
	},
}

var ledgerViewCmd = &cobra.Command{
	Use:   "view <batch-id>",
	Short: "View one generation batch",
	Args:  cobra.ExactArgs(1),
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

		e, err := st.LedgerRepo().GetByBatch(context.Background(), args[0])
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("batch %s not found", args[0])
		}

		fmt.Printf("Batch:      %s\n", e.BatchID)
		fmt.Printf("Created:    %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Date:       %s\n", e.Date)
		fmt.Printf("Difficulty: %d\n", e.Difficulty)
		fmt.Printf("Status:     %s\n", e.Status)
		fmt.Printf("Questions:  %d succeeded, %d failed of %d\n", e.Succeeded, e.Failed, e.Requested)
		fmt.Printf("Model:      %s\n", e.Model)
		fmt.Printf("Tokens:     %d in / %d out\n", e.PromptTokens, e.CompletionTokens)
		fmt.Printf("Cost:       %s\n", formatCost(e.TotalCost))
		if e.ErrorMessage != "" {
			fmt.Printf("Error:      %s\n", e.ErrorMessage)
		}
		return nil
	},
}

func init() {
	ledgerListCmd.Flags().IntP("limit", "n", 20, "Number of batches to show")

	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerViewCmd)
}
