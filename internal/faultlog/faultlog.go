// Package faultlog хранит структурированные записи о необработанных сбоях.
// Записи складываются построчно в JSON-файл, по одному файлу на календарный день
package faultlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry - одна самодостаточная запись о сбое
type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	Message     string    `json:"message"`
	Trace       string    `json:"trace"`
	Path        string    `json:"path"`
	Environment string    `json:"environment"`
}

// Store пишет записи в каталог журналов. Безопасен для
// конкурентных вызовов Append: каждая запись попадает в файл целиком
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore создаёт хранилище журнала сбоев в указанном каталоге
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Append дописывает запись в файл текущего дня (log-YYYY-MM-DD.json).
// Каталог создаётся при первом обращении
func (s *Store) Append(e Entry) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal fault entry: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create fault log dir: %w", err)
	}

	name := filepath.Join(s.dir, fmt.Sprintf("log-%s.json", e.Timestamp.Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open fault log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("failed to append fault entry: %w", err)
	}

	return nil
}
