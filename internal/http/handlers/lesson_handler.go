package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "afterschool/internal/log"
	"afterschool/internal/services"
)

type LessonHandler struct {
	Catalog *services.CatalogService
}

// Home renders the server-side catalog index page.
func (h *LessonHandler) Home(c *fiber.Ctx) error {
	lessons, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "lessons.home", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}
	return c.Render("lessons", fiber.Map{"Lessons": lessons})
}

func (h *LessonHandler) List(c *fiber.Ctx) error {
	lessons, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "lessons.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load lessons"})
	}
	return c.JSON(lessons)
}

// Search matches subject or location; a blank q returns everything.
func (h *LessonHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if len(q) > 50 {
		applog.Security(c, "validation.fail", map[string]any{"field": "q"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query too long"})
	}
	lessons, err := h.Catalog.Search(q)
	if err != nil {
		applog.Error(c, "lessons.search", err, map[string]any{"q": q})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "search failed"})
	}
	return c.JSON(lessons)
}

func (h *LessonHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "lesson"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
	}
	l, err := h.Catalog.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
	}
	return c.JSON(l)
}
