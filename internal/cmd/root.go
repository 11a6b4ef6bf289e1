// Package cmd implements the adaptation-engine command tree.
package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"adaptation-engine/adaptation"
	"adaptation-engine/internal/config"
	"adaptation-engine/internal/logging"
	"adaptation-engine/internal/manifest"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	catalog *manifest.Catalog

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *adaptation.Metrics
}

// NewRootCommand builds the command tree. Factories named by manifests are
// looked up in catalog.
func NewRootCommand(catalog *manifest.Catalog) *cobra.Command {
	a := &app{v: viper.New(), catalog: catalog}

	root := &cobra.Command{
		Use:   "adaptation-engine",
		Short: "Inspect capability adaptation manifests",
		Long: `adaptation-engine loads Go packages and an adaptation manifest, then
validates the manifest, shows the adapter chain chosen between two
capabilities or lists the declared capabilities.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.printMetrics(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./adaptation.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: console or json")
	flags.Bool("metrics", false, "print adaptation metrics after the command")

	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("metrics.enabled", flags.Lookup("metrics"))

	root.AddCommand(
		newCheckCommand(a),
		newPlanCommand(a),
		newCapabilitiesCommand(a),
	)

	return root
}

// Execute runs the command tree with os.Args.
func Execute(catalog *manifest.Catalog) error {
	return NewRootCommand(catalog).Execute()
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()

		a.metrics, err = adaptation.NewMetrics(a.registry)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *app) printMetrics(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}

	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
