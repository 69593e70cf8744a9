package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"afterschool/internal/repos"
)

type ExportService struct {
	Lessons *repos.LessonRepo
	Orders  *repos.OrderRepo
}

func NewExportService(lessons *repos.LessonRepo, orders *repos.OrderRepo) *ExportService {
	return &ExportService{Lessons: lessons, Orders: orders}
}

// ExportResult describes one written dump file.
type ExportResult struct {
	Collection string
	Path       string
	Records    int
}

// Run dumps the lessons and orders collections to timestamped JSON files in
// dir, creating dir if needed. Files are self-contained snapshots; nothing is
// mutated.
func (s *ExportService) Run(dir string) ([]ExportResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	ts := time.Now().Format("20060102-150405")

	lessons, err := s.Lessons.List()
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	orders, err := s.Orders.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	results := []ExportResult{
		{Collection: "lessons", Path: filepath.Join(dir, "lessons-"+ts+".json"), Records: len(lessons)},
		{Collection: "orders", Path: filepath.Join(dir, "orders-"+ts+".json"), Records: len(orders)},
	}
	if err := writeJSON(results[0].Path, lessons); err != nil {
		return nil, err
	}
	if err := writeJSON(results[1].Path, orders); err != nil {
		return nil, err
	}
	return results, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
