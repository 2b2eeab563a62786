package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List available question sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		var stats map[string]catalog.AttemptStats
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
				defer cancel()
				stats, _ = st.Attempts().Stats(ctx)
			}
		}

		categories, _ := cmd.Flags().GetStringSlice("category")
		filter := catalog.Filter{Categories: categories}
		if attempted, err := cmd.Flags().GetBool("attempted"); err == nil && cmd.Flags().Changed("attempted") {
			filter.Attempted = &attempted
		}

		rows := cat.List(filter, stats)
		if len(rows) == 0 {
			fmt.Println("No question sets match.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-32s %-14s %-8s %5s %7s %9s %6s\n",
			"ID", "CATEGORY", "LEVEL", "QNS", "TIME", "ATTEMPTS", "BEST")
		for _, row := range rows {
			best := "-"
			if row.BestScore != nil {
				best = fmt.Sprintf("%d%%", *row.BestScore)
			}
			fmt.Fprintf(w, "%-32s %-14s %-8s %5d %6dm %9d %6s\n",
				row.ID, row.Category, row.Difficulty,
				row.QuestionCount, row.DurationSecs/60, row.Attempts, best)
		}
		return nil
	},
}

func init() {
	setsCmd.Flags().StringSlice("category",
		nil, "Filter by category ("+strings.Join(catalog.KnownCategories(), ", ")+")")
	setsCmd.Flags().Bool("attempted", false, "Only sets with (true) or without (false) attempts")
}
