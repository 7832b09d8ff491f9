package cmd

import (
	"fmt"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/webpconvert/convert"
	"github.com/lepinkainen/webpconvert/types"
	"github.com/lepinkainen/webpconvert/ui"
	"github.com/lepinkainen/webpconvert/utils"
)

type ConvertCmd struct {
	Path      string `short:"p" required:"" help:"Image file or directory to convert" type:"path"`
	Lossless  bool   `short:"l" default:"true" negatable:"" help:"Use lossless WebP encoding"`
	Quality   int    `short:"q" default:"75" help:"Encode quality (0-100)"`
	Effort    int    `short:"c" default:"2" help:"Compression effort (0-6, higher is smaller but slower)"`
	Recursive bool   `short:"r" help:"Recurse into subdirectories (not implemented)"`
	Workers   int    `help:"Number of parallel workers" default:"0"`
	MaxWidth  uint   `name:"max-width" help:"Downscale images wider than this many pixels (0 disables)" default:"0"`
	NoTUI     bool   `name:"no-tui" help:"Disable the interactive TUI and show a plain progress bar"`
}

func (cmd *ConvertCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	config, err := convert.NewEncodeConfig(cmd.Quality, cmd.Lossless, cmd.Effort)
	if err != nil {
		return fmt.Errorf("invalid encode settings: %w", err)
	}
	if cmd.MaxWidth > 0 {
		config = config.WithMaxWidth(cmd.MaxWidth)
	}

	if cmd.Recursive {
		fmt.Printf("%s\n", ui.WarnStyle.Render("⚠️  Recursive traversal is not implemented, converting top level only"))
	}

	paths, err := convert.EnumeratePaths(cmd.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files found in %s", cmd.Path)
	}

	tasks := make([]convert.ConversionTask, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, convert.ConversionTask{SourcePath: path, Config: config})
	}

	workers := cmd.pickWorkers(paths)

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("WebP Convert %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Converting %d files with %d workers:", len(tasks), workers)))

	var summary *convert.Summary
	if len(tasks) > 1 && workers > 1 && !cmd.NoTUI {
		summary, err = cmd.runWithTUI(tasks, workers, version)
		if err != nil {
			return err
		}
	} else {
		summary = cmd.runWithProgressBar(tasks, workers)
	}

	cmd.printSummary(summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", summary.Failed, summary.Total)
	}
	return nil
}

// pickWorkers resolves the worker count: an explicit flag wins, network
// drives get a single worker, local drives get one per CPU.
func (cmd *ConvertCmd) pickWorkers(paths []string) int {
	if cmd.Workers > 0 {
		return cmd.Workers
	}

	for _, path := range paths {
		if utils.IsNetworkDrive(path) {
			fmt.Printf("%s\n", ui.WarnStyle.Render("⚠️  Network drive detected, using 1 worker for optimal performance"))
			return 1
		}
	}

	return runtime.NumCPU()
}

// runWithProgressBar runs the pool with a plain progress bar, used for
// single-file runs, single-worker runs, and --no-tui.
func (cmd *ConvertCmd) runWithProgressBar(tasks []convert.ConversionTask, workers int) *convert.Summary {
	bar := progressbar.Default(int64(len(tasks)), "converting")

	pool := &convert.Pool{
		Workers: workers,
		OnResult: func(workerID int, result convert.ConversionResult) {
			_ = bar.Add(1)
		},
	}
	results := pool.Run(tasks)

	return convert.Aggregate(results)
}

// runWithTUI runs the pool behind the bubbletea dashboard, feeding pool
// events into the program. Quitting the TUI early does not cancel the
// batch; the pool drains its queue and the summary is printed as usual.
func (cmd *ConvertCmd) runWithTUI(tasks []convert.ConversionTask, workers int, version string) (*convert.Summary, error) {
	model := ui.NewConvertModel(len(tasks), workers, version)
	p := tea.NewProgram(model)

	resultsCh := make(chan []convert.ConversionResult, 1)
	go func() {
		pool := &convert.Pool{
			Workers: workers,
			OnStart: func(workerID int, path string) {
				p.Send(ui.ConversionStartedMsg{WorkerID: workerID, Path: path})
			},
			OnResult: func(workerID int, result convert.ConversionResult) {
				p.Send(ui.ConversionDoneMsg{WorkerID: workerID, Result: result})
			},
		}
		results := pool.Run(tasks)
		p.Send(ui.BatchDoneMsg{})
		resultsCh <- results
	}()

	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("failed to run TUI: %w", err)
	}

	return convert.Aggregate(<-resultsCh), nil
}

// printSummary displays the final batch statistics and failure list
func (cmd *ConvertCmd) printSummary(summary *convert.Summary) {
	fmt.Printf("\n%s\n", ui.HeaderStyle.Render("📊 Conversion Summary"))
	fmt.Printf("   Total: %d files\n", summary.Total)
	fmt.Printf("   Converted: %d files\n", summary.Succeeded)
	fmt.Printf("   Failed: %d files\n", summary.Failed)

	for _, failure := range summary.Failures {
		fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", failure.Path, failure.Reason)))
	}

	if summary.Failed == 0 {
		fmt.Printf("\n%s\n", ui.SuccessStyle.Render("✅ Conversion complete."))
	}
}
