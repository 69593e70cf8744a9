package handlers

import (
	"afterschool/internal/repos"
	"afterschool/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	LessonHandler *LessonHandler
	OrderHandler  *OrderHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	lessonRepo := repos.NewLessonRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(lessonRepo)
	orderSvc := services.NewOrderService(lessonRepo, orderRepo)

	return &Deps{
		LessonHandler: &LessonHandler{Catalog: catalogSvc},
		OrderHandler:  &OrderHandler{Order: orderSvc, Repo: orderRepo},
	}
}
