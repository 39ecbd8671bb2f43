package cmd

import (
	"github.com/example/vocaquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vocaquiz",
	Short: "TOEIC vocabulary quiz generator",
	Long: "Vocaquiz generates TOEIC-style multiple-choice vocabulary questions " +
		"with an LLM and assembles deterministic daily quiz sets from them.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCAQUIZ_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VOCAQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
