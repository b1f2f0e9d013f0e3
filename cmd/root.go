// Package cmd implements the kurera CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kurera",
	Short: "Joint rehab assessment and exercise progression",
	Long: "Kurera — a self-guided joint rehab program: assess your joint, get a " +
		"treatment level, and progress through daily exercise sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KURERA_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON exercise catalog (overrides the built-in library)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(levelupCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KURERA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog returns the catalog override when --catalog is set, otherwise
// the built-in library.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Default(), nil
}
