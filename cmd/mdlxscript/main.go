// mdlxscript builds MDX/MDL models from YAML scripts and replays edits on
// them with undo/redo.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Faultbox/mdlx/internal/config"
	"github.com/Faultbox/mdlx/internal/history"
	"github.com/Faultbox/mdlx/internal/logger"
	"github.com/Faultbox/mdlx/internal/script"
	"github.com/Faultbox/mdlx/pkg/mdlx"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed, color.Bold)
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	color.NoColor = color.NoColor || !cfg.Script.Color

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Debug("config loaded",
		zap.String("path", cfg.Path),
		zap.Int("history_depth", cfg.History.MaxDepth))

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "run":
		cmdRun(cfg, args)
	case "check":
		cmdCheck(args)
	case "nodes":
		cmdNodes(args)
	case "pose":
		cmdPose(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mdlxscript - MDX/MDL model scripting utility

Usage:
  mdlxscript [flags] <command> [arguments]

Commands:
  run <script.yaml>                    Build the model and run its edits
  check <script.yaml>                  Build the model and report unresolved references
  nodes <script.yaml>                  List nodes in NodeId order
  pose <script.yaml> <sequence> <ms>   Print world positions of every node

Flags:
  -config <path>       Config file (default ./config.yaml or user config dir)
  -debug               Enable debug logging
  -history-depth <n>   Maximum undo history depth (0 = unbounded)
  -keep-going          Continue after a failed edit
  -no-color            Disable colored output

Examples:
  mdlxscript check footman.yaml
  mdlxscript -debug run footman.yaml
  mdlxscript pose footman.yaml Walk 500`)
}

func fail(format string, a ...any) {
	errColor.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}

// load parses and builds the script named by the first argument.
func load(args []string, usage string) (*script.Document, *mdlx.Model, script.BuildStats) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mdlxscript "+usage)
		os.Exit(1)
	}
	doc, err := script.ParseFile(args[0])
	if err != nil {
		fail("%v", err)
	}
	m, stats, err := script.Build(doc, mdlx.WithLogger(logger.Named("mdlx")))
	if err != nil {
		fail("building %s: %v", args[0], err)
	}
	logger.Info("model loaded",
		zap.String("file", args[0]),
		zap.Int("resolved", stats.Resolved),
		zap.Int("skipped", stats.Skipped))
	return doc, m, stats
}

func printStats(m *mdlx.Model) {
	for _, s := range m.Stats() {
		if s.Len > 0 {
			fmt.Printf("  %-18s %d\n", s.Name, s.Len)
		}
	}
	fmt.Printf("  %-18s %d\n", "References", m.ReferenceCount())
}

func cmdRun(cfg *config.Config, args []string) {
	doc, m, _ := load(args, "run <script.yaml>")

	h := history.New(cfg.History.MaxDepth, logger.Named("history"))
	r := script.NewRunner(m, h, cfg.Script.StopOnError)
	rep, err := r.Run(doc.Edits)

	headerColor.Printf("Model: %s\n", m.Name())
	fmt.Printf("Edits:   %d applied, %d failed\n", rep.Applied, rep.Failed)
	fmt.Printf("History: %d undoable, %d redoable\n", h.Len(), h.RedoLen())
	fmt.Println()
	printStats(m)

	if err != nil {
		fmt.Println()
		for _, e := range unwrapAll(err) {
			errColor.Fprintf(os.Stderr, "  %v\n", e)
		}
		os.Exit(1)
	}
}

// unwrapAll flattens an errors.Join result.
func unwrapAll(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}

func cmdCheck(args []string) {
	_, m, stats := load(args, "check <script.yaml>")

	headerColor.Printf("Model: %s\n", m.Name())
	printStats(m)
	fmt.Println()
	if stats.Skipped > 0 {
		warnColor.Printf("%d of %d references unresolved\n", stats.Skipped, stats.Resolved+stats.Skipped)
		os.Exit(2)
	}
	okColor.Printf("all %d references resolved\n", stats.Resolved)
}

func cmdNodes(args []string) {
	_, m, _ := load(args, "nodes <script.yaml>")

	headerColor.Printf("%-6s %-16s %-24s %s\n", "Id", "Kind", "Name", "Parent")
	for _, n := range m.Nodes().All() {
		parent := "-"
		if p, ok := n.Parent().Target(); ok {
			parent = fmt.Sprintf("%d (%s)", p.NodeId(), p.Name())
		}
		fmt.Printf("%-6d %-16s %-24s %s\n", n.NodeId(), n.Kind(), n.Name(), parent)
	}
}

// poseTime offsets iv.Start by ms and clamps the result into iv. The offset
// is checked against the span before adding so it can never wrap.
func poseTime(iv mdlx.Interval, ms int64) (int32, bool) {
	span := int64(iv.End) - int64(iv.Start)
	switch {
	case ms < 0:
		return iv.Start, false
	case ms > span:
		return iv.End, false
	}
	return int32(int64(iv.Start) + ms), true
}

func cmdPose(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: mdlxscript pose <script.yaml> <sequence> <ms>")
		os.Exit(1)
	}
	_, m, _ := load(args, "pose <script.yaml> <sequence> <ms>")

	seq, ok := m.SequenceByName(args[1])
	if !ok {
		fail("sequence %q not found", args[1])
	}
	ms, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		fail("invalid time %q: %v", args[2], err)
	}
	iv := seq.Interval()
	t, inside := poseTime(iv, ms)
	if !inside {
		warnColor.Printf("offset %d lies outside %s [%d, %d]; clamping to %d\n", ms, seq.Name(), iv.Start, iv.End, t)
	}

	headerColor.Printf("%-6s %-24s %s\n", "Id", "Name", "World position")
	for _, n := range m.Nodes().All() {
		pos := n.WorldTransform(iv, t, t).Mul4x1(n.Pivot().Mgl().Vec4(1))
		fmt.Printf("%-6d %-24s (%.2f, %.2f, %.2f)\n", n.NodeId(), n.Name(), pos.X(), pos.Y(), pos.Z())
	}
}
