package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"minisql/internal/engine"
	"minisql/internal/storage/filestore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataDir string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "minisql",
		Short:        "Interactive SQL shell over flat delimited-text tables",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			root, err := resolveDataRoot(dataDir)
			if err != nil {
				return err
			}
			store, err := filestore.New(root, log)
			if err != nil {
				return err
			}
			log.WithField("dir", root).Info("using data directory")

			eng := engine.New(store, log)
			return runShell(eng)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "data directory (default: $MINISQL_DATA, else a 'data' directory beside the executable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// resolveDataRoot picks the storage root: the explicit flag first, then
// the MINISQL_DATA environment variable, then a "data" directory beside
// the executable.
func resolveDataRoot(flagDir string) (string, error) {
	if flagDir != "" {
		return filepath.Abs(flagDir)
	}
	if env := os.Getenv("MINISQL_DATA"); env != "" {
		return filepath.Abs(env)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "data"), nil
}
