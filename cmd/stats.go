package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		repo := st.Attempts()
		overview, err := repo.Overview(ctx)
		if err != nil {
			return err
		}
		if overview.Attempts == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Attempts:        %d\n", overview.Attempts)
		fmt.Printf("Sets completed:  %d\n", overview.SetsCompleted)
		fmt.Printf("Average score:   %d%%\n", overview.AverageScore)

		recent, err := repo.Recent(ctx, 10)
		if err != nil {
			return err
		}
		fmt.Println("\nRecent attempts:")
		for _, a := range recent {
			fmt.Printf("  %s  %3d%%  %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"), a.Score, a.SetTitle)
		}
		return nil
	},
}
