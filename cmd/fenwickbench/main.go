// Command fenwickbench times point updates on a Fenwick tree against a
// naive prefix array.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caio/go-fenwick/internal/bench"
)

const envPrefix = "FENWICKBENCH"

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bindFlags(fs *pflag.FlagSet) {
	fs.Int("size", bench.DefaultSize, "number of elements in both structures")
	fs.Int("updates", bench.DefaultUpdates, "number of +1 updates per round")
	fs.Int("rounds", bench.DefaultRounds, "number of timed rounds")
	fs.Int64("seed", bench.DefaultSeed, "seed for the random index patterns")
	fs.String("pattern", string(bench.Sequential), "index pattern: sequential, uniform or hotspot")
	fs.String("log-level", "info", "logging level")
	fs.String("config", "", "path to a config file")
	fs.Bool("json", false, "print the report as a JSON log line")
}

func newCommand() *cobra.Command {
	v := viper.New()
	c := &cobra.Command{
		Use:          "fenwickbench",
		Short:        "compare Fenwick tree updates against a naive prefix array",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, v)
		},
	}
	bindFlags(c.Flags())
	// flags are all defined above, so binding can't fail
	_ = v.BindPFlags(c.Flags())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return c
}

func run(c *cobra.Command, v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	lvl, err := zap.ParseAtomicLevel(strings.ToLower(v.GetString("log-level")))
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	pattern, err := bench.ParsePattern(v.GetString("pattern"))
	if err != nil {
		return err
	}
	h, err := bench.New(
		bench.Size(v.GetInt("size")),
		bench.Updates(v.GetInt("updates")),
		bench.Rounds(v.GetInt("rounds")),
		bench.Seed(v.GetInt64("seed")),
		bench.WithPattern(pattern),
		bench.WithLogger(logger.Named("bench")),
	)
	if err != nil {
		return fmt.Errorf("configuring benchmark: %w", err)
	}

	ctx, cancel := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := h.Run(ctx)
	if err != nil {
		return fmt.Errorf("running benchmark: %w", err)
	}

	out := c.OutOrStdout()
	if v.GetBool("json") {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(out),
			zapcore.InfoLevel,
		)
		zap.New(core).Info("benchmark report", zap.Object("report", report))
		return nil
	}
	fmt.Fprintf(out, "Normal Array Update Time (O(N)): %g s\n", report.NaiveStats.Mean)
	fmt.Fprintf(out, "Fenwick Tree Update Time (O(log N)): %g s\n", report.FenwickStats.Mean)
	return nil
}
