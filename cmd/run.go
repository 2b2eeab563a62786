package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/app"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
)

// runApp opens the store, loads the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.Attempts()
	return app.Run(app.Options{
		Catalog: cat,
		Repo:    repo,
		Sink:    store.NewResultRecorder(repo),
	})
}

// loadCatalog merges user question sets over the built-in bank.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cat, err := catalog.Load(resolveBankDir(cmd))
	if err != nil {
		return nil, fmt.Errorf("load question sets: %w", err)
	}
	return cat, nil
}
