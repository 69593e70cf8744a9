package repos_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"afterschool/internal/domain"
	"afterschool/internal/repos"
)

func memdb(t *testing.T) (*sqlx.DB, *repos.LessonRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, repos.NewLessonRepo(db)
}

func TestLessonInsertAssignsID(t *testing.T) {
	_, lessons := memdb(t)
	id, err := lessons.Insert(context.Background(), domain.Lesson{
		Subject: "Algebra II", Location: "Room 204", Price: 38, Spaces: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("no id assigned")
	}

	got, err := lessons.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Subject != "Algebra II" || got.CreatedAt == "" {
		t.Fatalf("bad row: %+v", got)
	}
}

func TestLessonSearchMatchesSubjectAndLocation(t *testing.T) {
	_, lessons := memdb(t)
	ctx := context.Background()
	if _, err := lessons.Insert(ctx, domain.Lesson{Subject: "Biology Lab", Location: "Science Lab B", Price: 42, Spaces: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := lessons.Insert(ctx, domain.Lesson{Subject: "World History", Location: "Room 112", Price: 34, Spaces: 5}); err != nil {
		t.Fatal(err)
	}

	hits, err := lessons.Search("lab")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Subject != "Biology Lab" {
		t.Fatalf("bad search result: %+v", hits)
	}

	hits, err = lessons.Search("room")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Subject != "World History" {
		t.Fatalf("bad location search: %+v", hits)
	}
}

func TestReserveSpaces(t *testing.T) {
	_, lessons := memdb(t)
	id, err := lessons.Insert(context.Background(), domain.Lesson{
		Subject: "Studio Art", Location: "Art Atelier", Price: 40, Spaces: 5,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := lessons.ReserveSpaces(id, 3); err != nil {
		t.Fatal(err)
	}
	left, _ := lessons.Spaces(id)
	if left != 2 {
		t.Fatalf("want 2 left, got %d", left)
	}

	// reserving more than remain must fail and leave the row untouched
	if err := lessons.ReserveSpaces(id, 3); err == nil {
		t.Fatal("want insufficient-spaces error")
	}
	left, _ = lessons.Spaces(id)
	if left != 2 {
		t.Fatalf("failed reserve changed spaces: %d", left)
	}

	// reserving down to exactly zero is allowed
	if err := lessons.ReserveSpaces(id, 2); err != nil {
		t.Fatal(err)
	}
	got, err := lessons.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spaces != 0 || got.UpdatedAt == "" {
		t.Fatalf("want 0 spaces and updated_at set, got %+v", got)
	}
}
