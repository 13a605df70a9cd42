package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "stats-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	t.Run("RecordCounters", func(t *testing.T) {
		storage.RecordAnalysis(1.5)
		storage.RecordAnalysis(0.5)
		storage.RecordFetchFailure()
		storage.RecordRegistryFailure()

		current := storage.Current()
		if current.Analyses != 2 {
			t.Errorf("Expected 2 analyses, got %d", current.Analyses)
		}
		if current.FetchFailures != 1 {
			t.Errorf("Expected 1 fetch failure, got %d", current.FetchFailures)
		}
		if current.RegistryFailures != 1 {
			t.Errorf("Expected 1 registry failure, got %d", current.RegistryFailures)
		}
		if current.TotalLoadSeconds != 2.0 {
			t.Errorf("Expected 2.0 total load seconds, got %f", current.TotalLoadSeconds)
		}
	})

	t.Run("Summary", func(t *testing.T) {
		summary := storage.Summary()
		if summary["analyses"] != 2 {
			t.Errorf("Expected 2 analyses in summary, got %v", summary["analyses"])
		}
		if summary["averageLoadTime"] != 1.0 {
			t.Errorf("Expected average load time 1.0, got %v", summary["averageLoadTime"])
		}
	})

	t.Run("Persistence", func(t *testing.T) {
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond) // give the background writer time

		reloaded, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}
		if got := reloaded.Current().Analyses; got != 2 {
			t.Errorf("Expected 2 analyses after reload, got %d", got)
		}

		if _, err := os.Stat(filepath.Join(tempDir, "stats.json")); err != nil {
			t.Errorf("Expected stats file on disk: %v", err)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.stats[oldMonth] = &MonthlyStats{Analyses: 100}
		storage.mutex.Unlock()

		storage.Cleanup()

		storage.mutex.RLock()
		_, exists := storage.stats[oldMonth]
		storage.mutex.RUnlock()
		if exists {
			t.Error("Old month should have been cleaned up")
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					storage.RecordAnalysis(0.1)
					storage.Current()
				}
				done <- true
			}()
		}
		for i := 0; i < 10; i++ {
			<-done
		}

		if got := storage.Current().Analyses; got != 1002 {
			t.Errorf("Expected 1002 analyses after concurrent writes, got %d", got)
		}
	})
}

func TestNilStorageIsSafe(t *testing.T) {
	var storage *Storage
	storage.RecordAnalysis(1.0)
	storage.RecordFetchFailure()
	storage.RecordRegistryFailure()
	if err := storage.Shutdown(); err != nil {
		t.Errorf("Nil storage shutdown should be a no-op, got %v", err)
	}
}

func TestMonths(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "stats-months-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	storage.mutex.Lock()
	storage.stats["2026-06"] = &MonthlyStats{}
	storage.stats["2026-08"] = &MonthlyStats{}
	storage.stats["2026-07"] = &MonthlyStats{}
	storage.mutex.Unlock()

	months := storage.Months()
	want := []string{"2026-08", "2026-07", "2026-06"}
	if len(months) != len(want) {
		t.Fatalf("Expected %d months, got %d", len(want), len(months))
	}
	for i := range want {
		if months[i] != want[i] {
			t.Errorf("Month %d: expected %s, got %s", i, want[i], months[i])
		}
	}
}
