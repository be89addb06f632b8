package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/RegistryAccord/registryaccord-specs/internal/config"
	"github.com/RegistryAccord/registryaccord-specs/internal/injector"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, newRootCmd(os.Stdout, os.Stderr)); err != nil {
		stop()
		os.Exit(1)
	}
}

// execute runs cmd and prints the error it returns, if any, to the
// command's stderr. Usage errors from cobra land here too.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

type options struct {
	configPath string
	dir        string
	logLevel   string
	checkRefs  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "validate-lexicons",
		Short:         "Validate the lexicon schema files in a directory",
		Long:          "Checks that every *.json lexicon declares version 1, that its id matches its filename, and that it registers cleanly.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.dir, "dir", config.DefaultLexiconDir, "lexicon directory")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.checkRefs, "check-refs", false, "resolve every ref and union member after loading")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	app, err := injector.InitializeApp(cfg, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}
	defer app.Logger.Sync()

	res, err := app.Validator.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
	return nil
}

// loadConfig layers explicitly set flags over the config file.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.LexiconDir = opts.dir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("check-refs") {
		cfg.CheckReferences = opts.checkRefs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
