package cmd

import (
	"fmt"

	"github.com/encodeous/stp/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	newSwitches int
	newCost     uint32
	newOutPath  string
)

var generators = map[string]func(n int, cost uint32) (*state.TopologyCfg, error){
	"line": state.GenerateLine,
	"ring": state.GenerateRing,
	"mesh": state.GenerateMesh,
}

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:       "new <line|ring|mesh>",
	Short:     "Generate a topology description rooted at switch 1",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"line", "ring", "mesh"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := generators[args[0]](newSwitches, newCost)
		if err != nil {
			return err
		}
		if newOutPath == "" || newOutPath == "-" {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		err = state.WriteTopologyConfig(newOutPath, cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s topology with %d switches to %s\n", args[0], newSwitches, newOutPath)
		return err
	},
	GroupID: "init",
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().IntVarP(&newSwitches, "switches", "n", 4, "Number of switches")
	newCmd.Flags().Uint32Var(&newCost, "cost", state.DefaultPortCost, "Cost of every port")
	newCmd.Flags().StringVarP(&newOutPath, "file", "f", "-", "Where to write the topology, - for stdout")
}
