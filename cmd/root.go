package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/config"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gct-connect",
	Short: "Placement preparation from the terminal",
	Long:  "GCT Connect: timed mock tests, department tests and interview prep with local score history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GCTCONNECT_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file")

	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadFileConfig reads the TOML config from --config or the default XDG
// location.
func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadConfig(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the GCTCONNECT_DB env var, then the config file, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if os.Getenv("GCTCONNECT_DB") == "" {
		if cfg, err := loadFileConfig(cmd); err == nil && cfg.App.DBPath != nil && *cfg.App.DBPath != "" {
			return *cfg.App.DBPath, store.EnsureDir(*cfg.App.DBPath)
		}
	}
	return store.DefaultDBPath()
}

// resolveBankDir returns the user question set directory from the config
// file, falling back to the default XDG location. An absent directory just
// means no user sets.
func resolveBankDir(cmd *cobra.Command) string {
	if cfg, err := loadFileConfig(cmd); err == nil && cfg.App.BankDir != nil && *cfg.App.BankDir != "" {
		return *cfg.App.BankDir
	}
	return config.DefaultBankDir()
}
