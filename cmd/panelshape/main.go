// Command panelshape runs the panel shaping pipeline over a panel-data JSON
// payload and prints what each visualization would receive. It exists for
// debugging shaping decisions outside a running dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v2"

	"github.com/grafana/paneldata/pkg/display"
	"github.com/grafana/paneldata/pkg/panelframe"
	"github.com/grafana/paneldata/pkg/shaper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type payload struct {
	Frames  []*panelframe.Frame `json:"frames"`
	Error   string              `json:"error,omitempty"`
	Request shaper.Request      `json:"request"`
}

func main() {
	var (
		app        = kingpin.New("panelshape", "Run the panel shaping pipeline over a panel-data JSON payload.")
		file       = app.Flag("file", "Payload file, - for stdin.").Default("-").String()
		configFile = app.Flag("config", "Optional YAML file with shaper defaults.").String()
		timezone   = app.Flag("timezone", "Override the request timezone.").String()
		refresh    = app.Flag("refresh", "Override the refresh interval, e.g. 5s or live.").String()
		interval   = app.Flag("interval", "Override the sampling interval, e.g. 15s.").String()
		logLevel   = app.Flag("log.level", "Log level: debug, info, warn, error.").Default("info").Enum("debug", "info", "warn", "error")
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*logLevel)

	var cfg shaper.Config
	cfg.DefaultTimezone = "browser"
	if *configFile != "" {
		buf, err := os.ReadFile(*configFile)
		if err != nil {
			exitWithErr(err)
		}
		if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
			exitWithErr(fmt.Errorf("parsing %s: %w", *configFile, err))
		}
	}

	p, err := readPayload(*file)
	if err != nil {
		exitWithErr(err)
	}
	if *timezone != "" {
		p.Request.Timezone = *timezone
	}
	if *refresh != "" {
		p.Request.RefreshInterval = *refresh
	}
	if *interval != "" {
		d, err := model.ParseDuration(*interval)
		if err != nil {
			exitWithErr(fmt.Errorf("parsing interval: %w", err))
		}
		p.Request.IntervalMs = int64(d) / 1e6
	}

	data := &shaper.PanelData{Frames: p.Frames, Request: p.Request}
	if p.Error != "" {
		data.Error = errors.New(p.Error)
	}

	s := shaper.New(cfg, display.Theme{Name: "default"}, prometheus.NewRegistry(), logger)
	out, err := s.Shape(context.Background(), data, shaper.LogsOptions{})
	if err != nil {
		exitWithErr(err)
	}
	printSummary(out)
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}

func readPayload(file string) (*payload, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return &p, nil
}

func printSummary(data *shaper.PanelData) {
	bold := color.New(color.Bold)
	bold.Println("groups")
	printGroup("graph", data.GraphFrames)
	printGroup("table", data.TableFrames)
	printGroup("logs", data.LogsFrames)
	printGroup("trace", data.TraceFrames)

	bold.Println("results")
	if data.GraphResult != nil {
		fmt.Printf("  graph: %d frame(s)\n", len(data.GraphResult))
	} else {
		fmt.Println("  graph: none")
	}
	if data.TableResult != nil {
		fmt.Printf("  table: %d column(s), %d row(s)\n", len(data.TableResult.Fields), data.TableResult.Rows())
		for _, f := range data.TableResult.Fields {
			fmt.Printf("    %s (%s)\n", f.Name, f.Type)
		}
	} else {
		fmt.Println("  table: none")
	}
	if data.LogsResult != nil {
		fmt.Printf("  logs: %d row(s)\n", len(data.LogsResult.Rows))
		for _, row := range data.LogsResult.Rows {
			fmt.Printf("    %s %s %s\n", row.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"), levelColor(string(row.Level)), row.Line)
		}
	} else {
		fmt.Println("  logs: none")
	}
}

func printGroup(name string, frames []*panelframe.Frame) {
	refIDs := make([]string, 0, len(frames))
	for _, fr := range frames {
		refIDs = append(refIDs, fr.RefID)
	}
	fmt.Printf("  %s: %d frame(s) %v\n", name, len(frames), refIDs)
}

func levelColor(lvl string) string {
	switch lvl {
	case "error", "critical", "fatal":
		return color.RedString(lvl)
	case "warn":
		return color.YellowString(lvl)
	case "info":
		return color.GreenString(lvl)
	default:
		return lvl
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
	os.Exit(1)
}
