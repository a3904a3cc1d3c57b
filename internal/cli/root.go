// Package cli implements the pwinspect command line tool. pwinspect reads
// SVG path data, builds the satellite table for it and lets users inspect
// subpath topology, satellites and amount conversions.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/pointwise"
	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/pointwise/internal/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the pwinspect root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand creates the pwinspect command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pwinspect",
		Short: "Inspect satellites of path effects",
		Long: "pwinspect reads SVG path data and shows how path effects attach satellites\n" +
			"to its segments: subpath topology, generated satellite tables, radius/length\n" +
			"conversions, and how tables are reconciled as the path file changes.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file (default .pwinspect.toml)")
	root.PersistentFlags().StringP("file", "f", "", "read path data from file ('-' for stdin)")
	root.PersistentFlags().String("trace", "", "trace level (Error, Info, Debug)")
	root.PersistentFlags().String("type", "", "satellite type (F, IF, C, IC, BS)")
	root.PersistentFlags().Float64("amount", 0, "default satellite amount")
	_ = viper.BindPFlag("trace_level", root.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("type", root.PersistentFlags().Lookup("type"))
	_ = viper.BindPFlag("amount", root.PersistentFlags().Lookup("amount"))

	root.AddCommand(newTopologyCommand(), newSatellitesCommand(), newConvertCommand(),
		newWatchCommand())
	return root
}

// traceKeys are the tracers of the engine and its geometry packages.
var traceKeys = []string{"pointwise", "graphics", "arithm"}

func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pwinspect")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("PWINSPECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(cfg.TraceLevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	bezier.OffsetSamples = cfg.OffsetSamples
	return nil
}

// readVector reads path data from the first argument or from the file given
// by --file.
func readVector(cmd *cobra.Command, args []string) (bezier.Vector, error) {
	if len(args) > 0 {
		return bezier.ParsePathData(strings.Join(args, " "))
	}
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return nil, fmt.Errorf("no path data: give it as argument or use --file")
	}
	data, err := readInput(cmd.InOrStdin(), file)
	if err != nil {
		return nil, err
	}
	return bezier.ParsePathData(string(data))
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read path data: %w", err)
	}
	return data, nil
}

// engine parses the input and generates satellites from the configured
// prototype.
func engine(cmd *cobra.Command, args []string) (*pointwise.Pointwise, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	v, err := readVector(cmd, args)
	if err != nil {
		return nil, cfg, err
	}
	return pointwise.Generate(v, cfg.Prototype()), cfg, nil
}
