package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"odometer/internal/config"
	"odometer/internal/demo"
	"odometer/internal/logging"
	"odometer/internal/spinner"
	"odometer/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "odometer",
	Short: "Animated odometer number display for the terminal",
	Long: `Odometer shows a number as a row of vertical digit tracks that roll to
each new value. The interactive demo sets random values, steps the value
and switches between decimal and currency formats.`,
	SilenceUsage: true,
	RunE:         runDemo,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/odometer/config.yaml)")
	rootCmd.PersistentFlags().String("style", "", "number style: decimal or currency")
	rootCmd.PersistentFlags().String("locale", "", "BCP 47 locale used for formatting")
	rootCmd.PersistentFlags().String("currency", "", "ISO 4217 currency code for the currency style")
	rootCmd.PersistentFlags().Bool("debug", false, "draw every track with its whole digit stack")
	rootCmd.Flags().Float64("value", 0, "initial value")
	rootCmd.Flags().Int("fps", 0, "animation frame rate")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("format.style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("format.locale", rootCmd.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag("format.currency", rootCmd.PersistentFlags().Lookup("currency"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("demo.value", rootCmd.Flags().Lookup("value"))
	_ = viper.BindPFlag("animation.fps", rootCmd.Flags().Lookup("fps"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults(viper.GetViper())

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ODOMETER")
	// e.g. ODOMETER_FORMAT_LOCALE for format.locale
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Close()

	recorder, err := telemetry.NewOTLPRecorder(cmd.Context())
	if err != nil {
		log.Warn("telemetry disabled", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := recorder.Shutdown(ctx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	formats, err := demo.Formats(cfg.Format)
	if err != nil {
		return err
	}

	core := newSpinner(cfg, formats[0],
		spinner.WithContext(cmd.Context()),
		spinner.WithLogger(log),
		spinner.WithRecorder(recorder),
	)
	app := demo.New(spinner.NewModel(core, cfg.Animation.FPS), formats, cfg.Demo.Step, log)

	log.Info("starting demo", "format", formats[0].Name, "value", cfg.Demo.Value)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// newSpinner builds the widget core from cfg.
func newSpinner(cfg *config.Config, f demo.Format, opts ...spinner.Option) *spinner.Spinner {
	opts = append([]spinner.Option{
		spinner.WithStyles(demo.SpinnerStyles()),
		spinner.WithValue(cfg.Demo.Value),
	}, opts...)
	core := spinner.New(f, opts...)
	core.SpinningDuration = cfg.Animation.SpinningDuration
	core.AlignmentDuration = cfg.Animation.AlignmentDuration
	core.SetDebug(cfg.Debug)
	return core
}
