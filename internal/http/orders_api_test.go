package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"afterschool/internal/domain"
	"afterschool/internal/http/handlers"
	"afterschool/internal/repos"
	"afterschool/internal/seed"
)

// Minimal app over a seeded in-memory catalog
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := seed.Run(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	app.Get("/lessons", deps.LessonHandler.List)
	app.Get("/lessons/:id", deps.LessonHandler.Detail)
	app.Get("/search", deps.LessonHandler.Search)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/orders/:id", deps.OrderHandler.View)

	return app
}

func TestLessonsEndpointReturnsCatalog(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/lessons", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var lessons []domain.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lessons); err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 13 {
		t.Fatalf("want 13 lessons, got %d", len(lessons))
	}
}

func TestLessonDetailRejectsBadID(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/lessons/abc", "/lessons/0", "/lessons/99999"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: want 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	app := newTestApp(t)

	// find a real lesson id first
	resp, err := app.Test(httptest.NewRequest("GET", "/lessons", nil))
	if err != nil {
		t.Fatal(err)
	}
	var lessons []domain.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lessons); err != nil {
		t.Fatal(err)
	}

	body := strings.NewReader(`{
	  "name": "A", "phone": "555",
	  "items": [{"lessonId": ` + strconv.FormatInt(lessons[0].ID, 10) + `, "spaces": 2}]
	}`)
	req := httptest.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("want 201, got %d body=%s", resp.StatusCode, b)
	}
	var placed domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		t.Fatal(err)
	}
	if placed.ID == "" || len(placed.Items) != 1 {
		t.Fatalf("bad placed order: %+v", placed)
	}

	// the stored order is retrievable
	resp, err = app.Test(httptest.NewRequest("GET", "/orders/"+placed.ID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200 on order view, got %d", resp.StatusCode)
	}
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/orders",
		strings.NewReader(`{"name": "A", "phone": "555", "items": []}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(b), "items") {
		t.Fatalf("response should name the items field: %s", b)
	}
}
