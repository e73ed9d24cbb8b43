package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var topologyPath = "network.json"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stp",
	Short: "Spanning Tree Protocol convergence simulator",
	Long: `stp computes the converged Spanning Tree of a static switch topology.
Given switches, ports and links with one switch designated as root, it elects every switch's root port and decides which ports forward (DESIGNATED) and which are BLOCKED.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "init",
		Title: "Create Topologies",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "stp",
		Title: "Spanning Tree Commands",
	})
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "topology", "t", topologyPath, "topology description (yaml or json)")
}
