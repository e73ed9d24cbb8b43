package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/encodeous/stp/state"
	"github.com/goccy/go-yaml"
)

type PortReport struct {
	Id        state.PortId   `yaml:"id"`
	Role      state.Role     `yaml:"role"`
	Cost      uint32         `yaml:"cost"`
	TotalCost state.Cost     `yaml:"total_cost"`
	Peer      *state.PortRef `yaml:"peer,omitempty"`
}

type SwitchReport struct {
	Id        state.SwitchId `yaml:"id"`
	BridgeId  state.BridgeId `yaml:"bridge_id"`
	Root      bool           `yaml:"root,omitempty"`
	TotalCost state.Cost     `yaml:"total_cost"`
	RootPort  *state.PortId  `yaml:"root_port,omitempty"`
	Ports     []PortReport   `yaml:"ports"`
}

// Report is a read-only snapshot of a converged topology, ordered by id.
type Report struct {
	Root        state.SwitchId   `yaml:"root"`
	Switches    []SwitchReport   `yaml:"switches"`
	Unreachable []state.SwitchId `yaml:"unreachable,omitempty"`
}

// BuildReport snapshots t. A port's total cost is 0 on the root switch and
// the port's path cost everywhere else.
func BuildReport(t *state.Topology) Report {
	r := Report{Switches: make([]SwitchReport, 0, len(t.Switches))}
	if t.Root != nil {
		r.Root = t.Root.Id
	}
	for _, sw := range t.SortedSwitches() {
		sr := SwitchReport{
			Id:        sw.Id,
			BridgeId:  sw.BridgeId,
			Root:      sw.IsRoot,
			TotalCost: sw.TotalCost,
			Ports:     make([]PortReport, 0, len(sw.Ports)),
		}
		if sw.RootPort != nil {
			id := *sw.RootPort
			sr.RootPort = &id
		}
		for _, p := range sw.SortedPorts() {
			pr := PortReport{
				Id:        p.Id,
				Role:      p.Role,
				Cost:      p.Cost,
				TotalCost: t.TotalCost(p),
			}
			if sw.IsRoot {
				pr.TotalCost = state.Finite(0)
			}
			if p.Peer != nil {
				peer := *p.Peer
				pr.Peer = &peer
			}
			sr.Ports = append(sr.Ports, pr)
		}
		if !sw.IsRoot && sw.TotalCost.IsInfinite() {
			r.Unreachable = append(r.Unreachable, sw.Id)
		}
		r.Switches = append(r.Switches, sr)
	}
	return r
}

var (
	switchStyle  = lipgloss.NewStyle().Bold(true)
	rootTagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF"))
	roleStyles   = map[state.Role]lipgloss.Style{
		state.Blocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		state.Root:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		state.Designated: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	}
)

// RenderText writes one block per switch:
//
//	Switch 2:
//	   Port 1 is ROOT. Total cost: 1
//
// When styled is set the output carries terminal colors.
func RenderText(w io.Writer, r Report, styled bool) error {
	sb := strings.Builder{}
	for _, sw := range r.Switches {
		header := fmt.Sprintf("Switch %d", sw.Id)
		tag := ""
		if sw.Root {
			tag = " (ROOT)"
		}
		if styled {
			header = switchStyle.Render(header)
			if tag != "" {
				tag = rootTagStyle.Render(tag)
			}
		}
		sb.WriteString(header + tag + ":\n")
		for _, p := range sw.Ports {
			role := p.Role.String()
			if styled {
				role = roleStyles[p.Role].Render(role)
			}
			sb.WriteString(fmt.Sprintf("   Port %d is %s. Total cost: %s\n", p.Id, role, p.TotalCost))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func RenderYAML(w io.Writer, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func RenderJSON(w io.Writer, r Report) error {
	data, err := yaml.MarshalWithOptions(r, yaml.JSON())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Render writes r in one of the formats "text", "yaml" or "json".
func Render(w io.Writer, r Report, format string, styled bool) error {
	switch format {
	case "", "text":
		return RenderText(w, r, styled)
	case "yaml":
		return RenderYAML(w, r)
	case "json":
		return RenderJSON(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
