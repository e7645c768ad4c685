package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/pgp-icons/internal/config"
	"github.com/Faultbox/pgp-icons/internal/generate"
	"github.com/Faultbox/pgp-icons/internal/logger"
	"github.com/Faultbox/pgp-icons/internal/store"
)

// app carries the state shared by all commands once flags are parsed.
type app struct {
	flags config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pgpicons",
		Short: "Generate the PGP SupportPac node icons",
		Long: `pgpicons draws the padlock icons of the PGP encrypter and decrypter nodes
(16x16, 30x30 and 32x32) and writes them as GIF files into the SupportPac
icon tree:

  <base>/{clcl16,obj16,obj30,obj32}/com/ibm/broker/supportpac/pgp/PGP{Encrypter,Decrypter}.gif

An existing icon is renamed to <name>.gif.bak the first time it is replaced.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	a.flags.Register(root.PersistentFlags())

	root.AddCommand(newListCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the config and starts logging.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(&a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := logger.Options{Level: cfg.Logging.Level, Console: logOut}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.Setup(opts); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)
	return nil
}

func (a *app) store(out io.Writer) *store.Store {
	return store.New(a.cfg.Output.BaseDir,
		store.WithBackupSuffix(a.cfg.Output.BackupSuffix),
		store.WithCreateDirs(a.cfg.Output.CreateDirs),
		store.WithOutput(out),
		store.WithLogger(logger.Named("store")),
	)
}

func (a *app) generate(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("generating icons", zap.String("base_dir", a.cfg.Output.BaseDir))

	res, err := generate.Run(ctx, a.store(cmd.OutOrStdout()), cmd.OutOrStdout())
	if err != nil {
		logger.Error("icon generation failed",
			zap.Int("written", len(res.Written)),
			zap.Error(err))
		return err
	}

	logger.Debug("icon generation finished", zap.Int("written", len(res.Written)))
	return nil
}
