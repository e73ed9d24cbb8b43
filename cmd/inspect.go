package cmd

import (
	"fmt"
	"strings"

	"github.com/encodeous/stp/state"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"i"},
	Short:   "Lists every switch with its ports, links and neighbors",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := state.LoadTopology(topologyPath)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), describe(t))
		return err
	},
	GroupID: "stp",
}

func describe(t *state.Topology) string {
	sb := strings.Builder{}
	for _, sw := range t.SortedSwitches() {
		sb.WriteString(fmt.Sprintf("Switch %d", sw.Id))
		if sw.IsRoot {
			sb.WriteString(" (ROOT)")
		}
		sb.WriteString(fmt.Sprintf(" bridge %d\n", sw.BridgeId))
		for _, p := range sw.SortedPorts() {
			peer := "unlinked"
			if p.Peer != nil {
				peer = "-> " + p.Peer.String()
			}
			sb.WriteString(fmt.Sprintf("   Port %d cost %d %s\n", p.Id, p.Cost, peer))
		}
		neighbors := make([]string, 0)
		for _, n := range t.Neighbors(sw.Id) {
			neighbors = append(neighbors, fmt.Sprint(n.Id))
		}
		sb.WriteString(fmt.Sprintf("   Neighbors: [%s]\n", strings.Join(neighbors, ", ")))
	}
	sb.WriteString("Links:\n")
	for _, link := range t.Links() {
		sb.WriteString(fmt.Sprintf("   %s <-> %s\n", link.V1, link.V2))
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
