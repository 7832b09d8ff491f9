package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

// buildMixedBatch creates valid PNGs and corrupt files in a fresh temp
// directory and returns the tasks for all of them.
func buildMixedBatch(t *testing.T, valid, corrupt int) []ConversionTask {
	t.Helper()

	testDir := t.TempDir()
	cfg := testConfig(t)

	var tasks []ConversionTask
	for i := 0; i < valid; i++ {
		path := filepath.Join(testDir, fmt.Sprintf("good_%03d.png", i))
		writeTestPNG(t, path, 8, 8)
		tasks = append(tasks, ConversionTask{SourcePath: path, Config: cfg})
	}
	for i := 0; i < corrupt; i++ {
		path := filepath.Join(testDir, fmt.Sprintf("bad_%03d.png", i))
		if err := os.WriteFile(path, []byte("garbage bytes"), 0644); err != nil {
			t.Fatalf("Failed to create corrupt file: %v", err)
		}
		tasks = append(tasks, ConversionTask{SourcePath: path, Config: cfg})
	}

	return tasks
}

func TestPool_MixedBatch(t *testing.T) {
	const valid, corrupt = 6, 2

	for _, workers := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			tasks := buildMixedBatch(t, valid, corrupt)

			pool := &Pool{Workers: workers}
			results := pool.Run(tasks)

			summary := Aggregate(results)
			if summary.Total != valid+corrupt {
				t.Errorf("Total = %d, want %d", summary.Total, valid+corrupt)
			}
			if summary.Succeeded != valid {
				t.Errorf("Succeeded = %d, want %d", summary.Succeeded, valid)
			}
			if summary.Failed != corrupt {
				t.Errorf("Failed = %d, want %d", summary.Failed, corrupt)
			}
			if len(summary.Failures) != corrupt {
				t.Errorf("Expected %d failure entries, got %d", corrupt, len(summary.Failures))
			}
		})
	}
}

func TestPool_DirectoryWithMixedContent(t *testing.T) {
	// A directory holding a PNG, a JPEG and a text file: both images
	// convert, the text file fails at decode, and the batch still
	// completes.
	testDir := t.TempDir()
	writeTestPNG(t, filepath.Join(testDir, "a.png"), 16, 16)
	writeTestImage(t, filepath.Join(testDir, "b.jpg"), "jpeg", 16, 16)
	if err := os.WriteFile(filepath.Join(testDir, "c.txt"), []byte("plain text, not an image"), 0644); err != nil {
		t.Fatalf("Failed to create text file: %v", err)
	}

	paths, err := EnumeratePaths(testDir)
	if err != nil {
		t.Fatalf("EnumeratePaths() error = %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Expected 3 enumerated paths, got %d", len(paths))
	}

	cfg := testConfig(t)
	tasks := make([]ConversionTask, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, ConversionTask{SourcePath: path, Config: cfg})
	}

	pool := &Pool{Workers: 2}
	summary := Aggregate(pool.Run(tasks))

	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("Summary = total %d, succeeded %d, failed %d; want 3/2/1",
			summary.Total, summary.Succeeded, summary.Failed)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].Path != filepath.Join(testDir, "c.txt") {
		t.Errorf("Expected c.txt as the only failure, got %+v", summary.Failures)
	}

	for _, name := range []string{"a.webp", "b.webp"} {
		if _, err := os.Stat(filepath.Join(testDir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(testDir, "c.webp")); !os.IsNotExist(err) {
		t.Error("No output should be written for the text file")
	}
}

func TestPool_NoLossNoDuplication(t *testing.T) {
	testDir := t.TempDir()
	cfg := testConfig(t)

	const taskCount = 100
	tasks := make([]ConversionTask, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		path := filepath.Join(testDir, fmt.Sprintf("img_%03d.png", i))
		writeTestPNG(t, path, 8, 8)
		tasks = append(tasks, ConversionTask{SourcePath: path, Config: cfg})
	}

	pool := &Pool{Workers: 8}
	results := pool.Run(tasks)

	if len(results) != taskCount {
		t.Fatalf("Expected %d results, got %d", taskCount, len(results))
	}

	seen := make(map[string]bool, taskCount)
	for _, result := range results {
		if !result.Succeeded() {
			t.Errorf("Unexpected failure for %s: %v", result.SourcePath, result.Err)
		}
		if seen[result.SourcePath] {
			t.Errorf("Duplicate result for %s", result.SourcePath)
		}
		seen[result.SourcePath] = true
	}

	for _, task := range tasks {
		if !seen[task.SourcePath] {
			t.Errorf("Missing result for %s", task.SourcePath)
		}
		if _, err := os.Stat(OutputPathFor(task.SourcePath)); err != nil {
			t.Errorf("Missing output for %s: %v", task.SourcePath, err)
		}
	}
}

func TestPool_FailureDoesNotAbortBatch(t *testing.T) {
	tasks := buildMixedBatch(t, 4, 0)

	// A task pointing at a file that never existed fails at decode but
	// must not affect its siblings.
	tasks = append(tasks, ConversionTask{
		SourcePath: "/path/to/nonexistent/photo.png",
		Config:     testConfig(t),
	})

	pool := &Pool{Workers: 2}
	summary := Aggregate(pool.Run(tasks))

	if summary.Succeeded != 4 {
		t.Errorf("Succeeded = %d, want 4", summary.Succeeded)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
}

func TestPool_Callbacks(t *testing.T) {
	tasks := buildMixedBatch(t, 5, 1)

	var started atomic.Int64
	resultCalls := 0 // OnResult runs on a single goroutine, no sync needed

	pool := &Pool{
		Workers: 4,
		OnStart: func(workerID int, path string) {
			if workerID < 0 || workerID >= 4 {
				t.Errorf("Worker ID %d out of range", workerID)
			}
			started.Add(1)
		},
		OnResult: func(workerID int, result ConversionResult) {
			if workerID < 0 || workerID >= 4 {
				t.Errorf("OnResult worker ID %d out of range", workerID)
			}
			resultCalls++
		},
	}
	results := pool.Run(tasks)

	if got := started.Load(); got != int64(len(tasks)) {
		t.Errorf("OnStart called %d times, want %d", got, len(tasks))
	}
	if resultCalls != len(tasks) {
		t.Errorf("OnResult called %d times, want %d", resultCalls, len(tasks))
	}
	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}
}

func TestPool_ZeroWorkersRunsSingleWorker(t *testing.T) {
	tasks := buildMixedBatch(t, 2, 0)

	pool := &Pool{Workers: 0}
	results := pool.Run(tasks)

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}
}

func TestPool_EmptyTaskList(t *testing.T) {
	pool := &Pool{Workers: 4}
	results := pool.Run(nil)

	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
