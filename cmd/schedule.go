package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/vocaquiz/internal/scheduler"
	"github.com/example/vocaquiz/internal/store"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the daily generation schedule in the foreground",
	Long: "Generates questions every day at the configured time " +
		"(VOCAQUIZ_SCHEDULE_AT, default 08:00 in VOCAQUIZ_TZ, default " +
		"Asia/Tokyo) for each requested difficulty. Runs until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulties, _ := cmd.Flags().GetIntSlice("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		for _, d := range difficulties {
			if d < 1 || d > 3 {
				return fmt.Errorf("difficulty must be 1-3, got %d", d)
			}
		}
		if count < 1 || count > 100 {
			return fmt.Errorf("count must be 1-100, got %d", count)
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

		sched, err := scheduler.New(&scheduledBatch{store: st, count: count}, difficulties)
		if err != nil {
			return fmt.Errorf("configure scheduler: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()

		fmt.Printf("Scheduler running for difficulties %v. Press Ctrl+C to stop.\n", difficulties)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		fmt.Println("\nStopping scheduler.")
		return nil
	},
}

// scheduledBatch adapts the shared generation entrypoint to the
// scheduler's Runner interface.
type scheduledBatch struct {
	store *store.Store
	count int
}

func (b *scheduledBatch) RunBatch(ctx context.Context, difficulty int, day time.Time) error {
	outcome, err := runGenerationBatch(ctx, b.store, difficulty, b.count, day)
	if err != nil {
		return err
	}
	fmt.Printf("Scheduled batch %s: %s (%d/%d questions, %s)\n",
		outcome.BatchID, outcome.Result.Status(),
		outcome.Result.Succeeded, outcome.Result.Requested,
		formatCost(outcome.Cost))
	return nil
}

func init() {
	scheduleCmd.Flags().IntSliceP("difficulty", "l", []int{1, 2}, "Difficulty tiers to generate daily")
	scheduleCmd.Flags().IntP("count", "n", 10, "Questions per difficulty per day (1-100)")
}
