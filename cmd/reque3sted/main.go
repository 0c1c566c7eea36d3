package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Mking11/reque3sted/cmd/reque3sted/screen"
	"github.com/Mking11/reque3sted/cmd/reque3sted/ui"
	"github.com/Mking11/reque3sted/internal/config"
	"github.com/Mking11/reque3sted/internal/logging"
	"github.com/Mking11/reque3sted/internal/store"
)

var (
	// Global flags
	verbose   bool
	workspace string
	backend   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. Assigned in init to avoid an
// initialization cycle with isInteractiveRoot.
var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "reque3sted",
		Short: "reque3sted - terminal user profile editor",
		Long: `reque3sted is a terminal profile editor.

Profiles live in a user store: an in-memory backend with simulated
latency (the demo default) or a local SQLite database. The interactive
screen loads a profile by ID, edits the name, and saves it back.

Run without arguments to start the interactive screen.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Initialize(workspace); err != nil {
				fmt.Fprintf(os.Stderr, "warning: logging init failed: %v\n", err)
			}

			// Skip the zap logger for the interactive screen (it owns the
			// terminal).
			if isInteractiveRoot(cmd) {
				return nil
			}

			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
			logging.CloseAll()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen()
		},
	}
}

// loadConfig reads the workspace config and applies command-line
// overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.DefaultPath(workspace))
	if err != nil {
		return nil, err
	}
	if backend != "" {
		if cfg.Store == nil {
			cfg.Store = &config.StoreConfig{}
		}
		cfg.Store.Backend = backend
	}
	return cfg, nil
}

// openStore builds the configured UserStore. The returned closer is a
// no-op for the memory backend.
func openStore(cfg *config.Config) (store.UserStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		local, err := store.NewLocalStore(cfg.DBPath(workspace))
		if err != nil {
			return nil, nil, err
		}
		return local, func() { _ = local.Close() }, nil

	case config.BackendMemory:
		mem := store.NewMemoryStore(store.Latency{
			Insert: cfg.InsertLatency(),
			Update: cfg.UpdateLatency(),
			Delete: cfg.DeleteLatency(),
			Get:    cfg.GetLatency(),
		})
		return mem, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// runScreen launches the interactive profile editor.
func runScreen() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer()

	// The memory backend starts empty every run; preload the demo
	// fixtures so there is something to load.
	if mem, ok := st.(*store.MemoryStore); ok {
		mem.Preload(store.DemoUsers()...)
	}

	logging.Boot("launching profile screen (backend=%s)", cfg.Store.Backend)
	return screen.Run(st, ui.ThemeByName(cfg.Theme))
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", defaultWorkspace(), "workspace directory holding .reque3sted/")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "store backend override (memory|sqlite)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isInteractiveRoot reports whether cmd is the bare root invocation
// that launches the TUI. Identity comparison, so renaming or aliasing
// the binary cannot break the detection.
func isInteractiveRoot(cmd *cobra.Command) bool {
	return cmd == rootCmd
}

func defaultWorkspace() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
