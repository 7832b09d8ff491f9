package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// FileLogEntry is one row in the converted-files list.
type FileLogEntry struct {
	SourceName string
	OutputName string
	Bytes      int64
	Error      string
}

func (f FileLogEntry) FilterValue() string { return f.SourceName }
func (f FileLogEntry) Title() string       { return f.SourceName }
func (f FileLogEntry) Description() string {
	if f.Error != "" {
		return fmt.Sprintf("❌ %s", f.Error)
	}
	return fmt.Sprintf("✓ → %s (%.1f KB)", f.OutputName, float64(f.Bytes)/1024)
}

// WorkerState tracks what each pool worker is doing.
type WorkerState struct {
	ID          int
	CurrentFile string
	Status      string // "idle", "converting"
}

// ConvertModel is the TUI shown during a parallel batch conversion. It is
// fed ConversionStartedMsg/ConversionDoneMsg events by the pool and quits
// on BatchDoneMsg.
type ConvertModel struct {
	totalFiles     int
	processedFiles int
	workers        []*WorkerState
	fileEntries    []FileLogEntry

	overallProgress progress.Model
	fileList        list.Model

	width  int
	height int

	quitting bool

	Version string
}

// NewConvertModel creates the TUI model for a batch of numFiles files
// processed by numWorkers workers.
func NewConvertModel(numFiles, numWorkers int, version string) ConvertModel {
	workers := make([]*WorkerState, numWorkers)
	for i := range workers {
		workers[i] = &WorkerState{
			ID:     i,
			Status: "idle",
		}
	}

	fileList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Converted Files"

	return ConvertModel{
		totalFiles:      numFiles,
		workers:         workers,
		overallProgress: progress.New(progress.WithDefaultGradient()),
		fileList:        fileList,
		Version:         version,
	}
}

// Init implements tea.Model
func (m ConvertModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width-4, msg.Height/3)

	case ConversionStartedMsg:
		if msg.WorkerID >= 0 && msg.WorkerID < len(m.workers) {
			worker := m.workers[msg.WorkerID]
			worker.CurrentFile = filepath.Base(msg.Path)
			worker.Status = "converting"
		}

	case ConversionDoneMsg:
		if msg.WorkerID >= 0 && msg.WorkerID < len(m.workers) {
			worker := m.workers[msg.WorkerID]
			worker.CurrentFile = ""
			worker.Status = "idle"
		}

		entry := FileLogEntry{
			SourceName: filepath.Base(msg.Result.SourcePath),
			OutputName: filepath.Base(msg.Result.OutputPath),
			Bytes:      msg.Result.BytesWritten,
		}
		if !msg.Result.Succeeded() {
			entry.Error = msg.Result.Err.Error()
		}

		m.fileEntries = append(m.fileEntries, entry)
		items := make([]list.Item, len(m.fileEntries))
		for i, entry := range m.fileEntries {
			items[i] = entry
		}
		m.fileList.SetItems(items)
		m.processedFiles++

	case BatchDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m ConvertModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	header := HeaderStyle.Render(fmt.Sprintf("WebP Convert %s", m.Version))

	overallPercent := 0.0
	if m.totalFiles > 0 {
		overallPercent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	overallView := fmt.Sprintf("Overall Progress: %s (%d/%d)",
		m.overallProgress.ViewAs(overallPercent),
		m.processedFiles,
		m.totalFiles)

	workerViews := []string{"Worker Status:"}
	for _, worker := range m.workers {
		status := fmt.Sprintf("Worker %d: %-12s %s", worker.ID+1, worker.Status, worker.CurrentFile)
		workerViews = append(workerViews, status)
	}

	sections := []string{
		header,
		overallView,
		strings.Join(workerViews, "\n"),
		m.fileList.View(),
		"Controls: [q] Quit",
	}

	return strings.Join(sections, "\n\n")
}
