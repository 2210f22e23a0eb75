package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pipe01/htmlfold/internal/config"
	"github.com/pipe01/htmlfold/internal/modes"
	"github.com/pipe01/htmlfold/internal/output"
	"github.com/pipe01/htmlfold/internal/workspace"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	maxRanges  = kingpin.Flag("max-ranges", "Maximum number of folding ranges per file, 0 for no limit").Short('m').IsSetByUser(&maxRangesSet).Int()
	format     = kingpin.Flag("format", "Output format").Short('f').Default(string(output.FormatText)).Enum(output.Formats...)
	configPath = kingpin.Flag("config", "YAML config file").Short('c').ExistingFile()
	watch      = kingpin.Flag("watch", "Watch files for changes and print their folding ranges again").Short('w').Bool()
	files      = kingpin.Arg("files", "List of HTML files to fold").Required().ExistingFiles()

	maxRangesSet bool
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("htmlfold.cli")
}

func main() {
	kingpin.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		kingpin.Fatalf("failed to load config: %s", err)
	}

	if maxRangesSet {
		cfg.MaxRanges = *maxRanges

		if err := cfg.Validate(); err != nil {
			kingpin.Fatalf("%s", err)
		}
	}

	commonlog.Configure(cfg.Log.Verbosity, cfg.LogPath())

	out, err := output.NewWriter(os.Stdout, output.Format(*format))
	if err != nil {
		kingpin.Fatalf("%s", err)
	}

	wd, _ := os.Getwd()

	f := &folder{
		ws:        workspace.New(wd),
		modes:     modes.New(),
		out:       out,
		maxRanges: cfg.MaxRanges,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watch {
		err = watchFiles(ctx, f)
		if err != nil {
			kingpin.Fatalf("failed to watch files: %s", err)
		}
	} else {
		err = f.foldAll(ctx, *files)
		if err != nil {
			kingpin.Fatalf("failed to fold files: %s", err)
		}
	}
}

type folder struct {
	ws        *workspace.Workspace
	modes     modes.LanguageModes
	out       *output.Writer
	maxRanges int
}

func (f *folder) foldAll(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := f.foldFile(ctx, name); err != nil {
			return fmt.Errorf("fold file %q: %w", name, err)
		}
	}

	return nil
}

func (f *folder) foldFile(ctx context.Context, name string) error {
	doc, err := f.ws.Load(name)
	if err != nil {
		return err
	}

	ranges, err := modes.FoldingRanges(ctx, f.modes, doc, doc.FullRange(), f.maxRanges)
	if err != nil {
		return fmt.Errorf("compute folding ranges: %w", err)
	}

	return f.out.WriteReport(name, ranges)
}

func watchFiles(ctx context.Context, f *folder) error {
	watcher, err := NewWatcher(f)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	for _, name := range *files {
		err = watcher.WatchFile(name)
		if err != nil {
			return fmt.Errorf("watch file %q: %w", name, err)
		}
	}

	// Print everything once so there is something to compare against
	if err := f.foldAll(ctx, *files); err != nil {
		return err
	}

	logger().Notice("watching files for changes...")

	return watcher.Run(ctx)
}
