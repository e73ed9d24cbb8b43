package cmd

import (
	"log/slog"

	"github.com/encodeous/stp/core"
	"github.com/spf13/cobra"
)

var (
	runVerbose bool
	runOutput  = "text"
	runColor   bool
	runLogPath string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Converge the topology and print every port's role",
	Long:  `Loads the topology, runs one breadth-first convergence pass from the root switch and reports each port's role and total cost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if runVerbose {
			level = slog.LevelDebug
		}
		_, err := core.Run(core.RunCfg{
			TopologyPath: topologyPath,
			LogPath:      runLogPath,
			LogLevel:     level,
			Format:       runOutput,
			Styled:       runColor,
			Out:          cmd.OutOrStdout(),
			LogOut:       cmd.ErrOrStderr(),
		})
		return err
	},
	GroupID: "stp",
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose output")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", runOutput, "Output format: text, yaml or json")
	runCmd.Flags().BoolVar(&runColor, "color", false, "Colorize text output")
	runCmd.Flags().StringVarP(&runLogPath, "log-path", "l", "", "Also write logs to this file")
}
