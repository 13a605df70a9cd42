// Package stats persists service-level audit counters across restarts.
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyStats aggregates audit activity for one calendar month.
type MonthlyStats struct {
	Analyses         int       `json:"analyses"`
	FetchFailures    int       `json:"fetch_failures"`
	RegistryFailures int       `json:"registry_failures"`
	TotalLoadSeconds float64   `json:"total_load_seconds"`
	LastUpdated      time.Time `json:"last_updated"`
}

// Storage handles persistent storage of audit counters.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
}

// NewStorage creates a statistics storage backed by a JSON file in
// dataDir, loading any counters a previous run left behind.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// save writes through a temporary file so a crash mid-write cannot
// corrupt the counters.
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		}
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// write already pending
	}
}

// record applies a mutation to the current month's counters. All Record
// helpers are safe on a nil Storage so the engine can run without one.
func (s *Storage) record(apply func(*MonthlyStats)) {
	if s == nil {
		return
	}

	month := currentMonth()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	m, exists := s.stats[month]
	if !exists {
		m = &MonthlyStats{}
		s.stats[month] = m
	}
	apply(m)
	m.LastUpdated = time.Now()

	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// RecordAnalysis counts one completed audit and its load time.
func (s *Storage) RecordAnalysis(loadSeconds float64) {
	s.record(func(m *MonthlyStats) {
		m.Analyses++
		m.TotalLoadSeconds += loadSeconds
	})
}

// RecordFetchFailure counts one audit aborted by a failed primary GET.
func (s *Storage) RecordFetchFailure() {
	s.record(func(m *MonthlyStats) {
		m.FetchFailures++
	})
}

// RecordRegistryFailure counts one degraded whois lookup.
func (s *Storage) RecordRegistryFailure() {
	s.record(func(m *MonthlyStats) {
		m.RegistryFailures++
	})
}

// Current returns the counters for the current month.
func (s *Storage) Current() MonthlyStats {
	month := currentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[month]; exists {
		return *m
	}
	return MonthlyStats{}
}

// Summary flattens the current month for the statistics endpoint.
func (s *Storage) Summary() map[string]interface{} {
	current := s.Current()

	average := 0.0
	if current.Analyses > 0 {
		average = current.TotalLoadSeconds / float64(current.Analyses)
	}

	return map[string]interface{}{
		"analyses":         current.Analyses,
		"fetchFailures":    current.FetchFailures,
		"registryFailures": current.RegistryFailures,
		"averageLoadTime":  average,
	}
}

// Cleanup drops every month except the current and previous one.
func (s *Storage) Cleanup() {
	now := time.Now()
	current := now.Format("2006-01")
	previous := now.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	for month := range s.stats {
		if month != current && month != previous {
			delete(s.stats, month)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
}

// Months returns every month with counters, newest first.
func (s *Storage) Months() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Shutdown flushes the counters to disk.
func (s *Storage) Shutdown() error {
	if s == nil {
		return nil
	}
	if err := s.save(); err != nil {
		log.Printf("Failed to save stats on shutdown: %v", err)
		return err
	}
	return nil
}
