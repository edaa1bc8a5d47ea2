package monolens

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/monolens/internal/version"
	"github.com/arthur-debert/monolens/pkg/config"
	"github.com/arthur-debert/monolens/pkg/filesystem"
	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/registry"
	"github.com/arthur-debert/monolens/pkg/types"
	"github.com/arthur-debert/monolens/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		rootDir   string
	)

	rootCmd := &cobra.Command{
		Use:     "monolens",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".",
		"Workspace root to inspect")

	rootCmd.AddCommand(newListCmd(&rootDir))
	rootCmd.AddCommand(newDepsCmd(&rootDir))
	rootCmd.AddCommand(newResolveLinkCmd(&rootDir))
	rootCmd.AddCommand(newCheckLinkCmd(&rootDir))
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

// env bundles the collaborators every command needs
type env struct {
	fs       types.FS
	notifier types.Notifier
	cfg      *config.Config
	registry *registry.Registry
	root     string
}

// newEnv wires the standard collaborators for the given root
func newEnv(rootDir string) (*env, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	notifier := ui.NewConsoleNotifier()

	return &env{
		fs:       fsys,
		notifier: notifier,
		cfg:      cfg,
		registry: registry.New(fsys, notifier, []string{root}, cfg.Excludes()),
		root:     root,
	}, nil
}
