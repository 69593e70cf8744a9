package services

import (
	"database/sql"
	"fmt"

	"afterschool/internal/domain"
	"afterschool/internal/repos"
	"afterschool/internal/validate"

	"github.com/google/uuid"
)

type OrderService struct {
	Lessons *repos.LessonRepo
	Orders  *repos.OrderRepo
}

func NewOrderService(lessons *repos.LessonRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Lessons: lessons, Orders: orders}
}

// Place validates the candidate, reserves the requested spaces against each
// referenced lesson, and persists the order. Capacity reservation sits on top
// of the data model: each line item is a conditional decrement that only
// succeeds while enough spaces remain.
func (s *OrderService) Place(candidate domain.Order) (string, error) {
	if err := validate.Order(&candidate); err != nil {
		return "", err
	}

	// pre-check: every referenced lesson must exist, once per order
	seen := map[int64]bool{}
	for _, it := range candidate.Items {
		if seen[it.LessonID] {
			return "", fmt.Errorf("duplicate line item for lesson %d", it.LessonID)
		}
		seen[it.LessonID] = true

		spaces, err := s.Lessons.Spaces(it.LessonID)
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("unknown lesson %d", it.LessonID)
		}
		if err != nil {
			return "", err
		}
		if spaces < it.Spaces {
			return "", fmt.Errorf("insufficient spaces for lesson %d (need %d, have %d)",
				it.LessonID, it.Spaces, spaces)
		}
	}

	// reserve
	for _, it := range candidate.Items {
		if err := s.Lessons.ReserveSpaces(it.LessonID, it.Spaces); err != nil {
			return "", err
		}
	}

	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, candidate.Name, candidate.Phone, candidate.Email); err != nil {
		return "", err
	}
	for _, it := range candidate.Items {
		if err := s.Orders.InsertItem(orderID, it.LessonID, it.Spaces); err != nil {
			return "", err
		}
	}
	return orderID, nil
}
