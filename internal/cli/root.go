// Package cli implements the command-line interface for qsim.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spinhalf/goqubit/internal/session"
	"github.com/spinhalf/goqubit/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "qsim",
	Short: "Single-qubit gate simulator",
	Long: `qsim - a simulator for the quantum state of a single qubit.

Apply standard gates (X, Y, Z, H, S, T and rotations RX/RY/RZ) to a
two-amplitude state vector, inspect measurement probabilities, and record
gate sessions to a local database for later review.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.goqubit/goqubit.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from the flag, the state file, or
// the default location, in that order.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	if sf, err := session.NewDefaultStateFile(); err == nil {
		if p := sf.State().DBPath; p != "" {
			return p, nil
		}
	}

	return storage.DefaultDBPath()
}

// openDB opens the database and applies pending migrations.
func openDB() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	if verbose {
		fmt.Printf("Database: %s\n", db.Path())
	}
	return db, nil
}
