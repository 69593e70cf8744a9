package services

import (
	"strings"

	"afterschool/internal/domain"
	"afterschool/internal/repos"
)

type CatalogService struct {
	Lessons *repos.LessonRepo
}

func NewCatalogService(lessons *repos.LessonRepo) *CatalogService {
	return &CatalogService{Lessons: lessons}
}

func (s *CatalogService) List() ([]domain.Lesson, error) {
	return s.Lessons.List()
}

// Search falls back to the full list for a blank query.
func (s *CatalogService) Search(q string) ([]domain.Lesson, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.Lessons.List()
	}
	return s.Lessons.Search(q)
}

func (s *CatalogService) Get(id int64) (domain.Lesson, error) {
	return s.Lessons.Get(id)
}
