package cmd

import (
	"fmt"

	"github.com/encodeous/stp/state"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks that the topology description is valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := state.LoadTopology(topologyPath)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Topology is valid: %d switches, %d links, root %d\n",
			len(t.Switches), len(t.Links()), t.Root.Id)
		return err
	},
	GroupID: "stp",
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
