package cmd

import (
	"fmt"
	"strconv"

	"odometer/internal/config"
	"odometer/internal/demo"
	"odometer/internal/spinner"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderCmd = &cobra.Command{
	Use:   "render VALUE...",
	Short: "Print the settled widget for each value",
	Long: `Render lays out each value exactly as the demo would after the animation
settles and prints it, one block per value. With --debug every track is
drawn with its whole unit stack.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	formats, err := demo.Formats(cfg.Format)
	if err != nil {
		return err
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("value %q: %w", arg, err)
		}
		values[i] = v
	}

	core := newSpinner(cfg, formats[0])
	model := spinner.NewModel(core, cfg.Animation.FPS)
	model.Init()
	for _, v := range values {
		model.SetValue(v)
		core.Settle()
		model.Snap()
		fmt.Fprintln(cmd.OutOrStdout(), model.View())
	}
	return nil
}
