package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"calc/internal/config"
	"calc/internal/console"
	"calc/internal/metrics"
	"calc/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd runs the interactive calculator when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive console calculator",
	Long: `calc is a menu driven console calculator. Pick an operation by number,
enter its operands and the result is printed and kept in the session history.
Choose 0 or close the input to leave.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCalculator,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'calc --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging on stderr")
	rootCmd.PersistentFlags().String("color", config.ColorAuto, "Color output: auto, always or never")
}

// bindFlags ties persistent flags to viper keys. It runs on every
// initialization because viper.Reset drops earlier bindings.
func bindFlags() {
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	bindFlags()

	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	cfg := config.Current()
	telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
	telemetry.LogDebug("Configuration loaded", "color", cfg.Color, "banner", cfg.Banner, "metrics_addr", cfg.MetricsAddr)
}

func runCalculator(cmd *cobra.Command, args []string) error {
	cfg := config.Current()
	m := metrics.NewMetrics()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(cfg.MetricsAddr, m.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				telemetry.LogError("Metrics server stopped", err, "addr", cfg.MetricsAddr)
			}
		}()
	}

	out := cmd.OutOrStdout()
	session := console.NewSession(
		console.NewReaderSource(cmd.InOrStdin()),
		out,
		console.WithStyles(console.NewStyles(out, cfg.Color)),
		console.WithMetrics(m),
		console.WithBanner(cfg.Banner),
		console.WithLogger(slog.Default()),
	)

	if err := session.Run(); err != nil {
		return fmt.Errorf("calculator session failed: %w", err)
	}
	return nil
}
