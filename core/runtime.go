package core

import (
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/stp/perf"
	"github.com/encodeous/stp/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// RunCfg configures a single load, converge and report cycle.
type RunCfg struct {
	TopologyPath string
	LogPath      string // if not empty, logs are also appended to this file
	LogLevel     slog.Level
	Format       string // text, yaml or json
	Styled       bool
	Out          io.Writer
	LogOut       io.Writer // defaults to os.Stderr
}

// NewLogger builds the console logger, fanned out to a text log file when
// logPath is set. The returned close func releases the file.
func NewLogger(console io.Writer, level slog.Level, logPath string) (*slog.Logger, func() error, error) {
	if console == nil {
		console = os.Stderr
	}
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(console, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: "stp",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	closer := func() error { return nil }
	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Run loads the topology at cfg.TopologyPath, converges it and writes the
// report to cfg.Out.
func Run(cfg RunCfg) (*Result, error) {
	log, closeLog, err := NewLogger(cfg.LogOut, cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	t, err := state.LoadTopology(cfg.TopologyPath)
	if err != nil {
		log.Error("failed to load topology", "path", cfg.TopologyPath, "error", err)
		return nil, err
	}
	log.Info("loaded topology", "path", cfg.TopologyPath, "switches", len(t.Switches), "links", len(t.Links()))

	res, err := Converge(t,
		WithLogger(log),
		WithVisitHook(func(sw *state.Switch, depth int) {
			log.Debug("visit", "switch", sw.Id, "depth", depth)
		}))
	if err != nil {
		log.Error("convergence failed", "error", err)
		return nil, err
	}
	log.Info("converged", "visited", len(res.Order), "unreachable", len(res.Unreachable), "elapsed", res.Elapsed)
	if len(res.Unreachable) > 0 {
		log.Warn("switches have no path to the root", "switches", res.Unreachable)
	}
	perf.Dump(log)

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	return res, Render(out, BuildReport(t), cfg.Format, cfg.Styled)
}
