package repos

import (
	"context"
	"fmt"

	"afterschool/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LessonRepo struct{ db *sqlx.DB }

func NewLessonRepo(db *sqlx.DB) *LessonRepo { return &LessonRepo{db: db} }

func (r *LessonRepo) List() ([]domain.Lesson, error) {
	var out []domain.Lesson
	err := r.db.Select(&out, `
	  SELECT
	    id, subject, location, price, spaces,
	    COALESCE(description,'') AS description, COALESCE(image,'') AS image,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM lessons
	  ORDER BY subject
	`)
	return out, err
}

func (r *LessonRepo) Get(id int64) (domain.Lesson, error) {
	var l domain.Lesson
	err := r.db.Get(&l, `
	  SELECT
	    id, subject, location, price, spaces,
	    COALESCE(description,'') AS description, COALESCE(image,'') AS image,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM lessons
	  WHERE id = ?
	`, id)
	return l, err
}

// Search matches subject or location, case-insensitive substring.
func (r *LessonRepo) Search(q string) ([]domain.Lesson, error) {
	var out []domain.Lesson
	like := "%" + q + "%"
	err := r.db.Select(&out, `
	  SELECT
	    id, subject, location, price, spaces,
	    COALESCE(description,'') AS description, COALESCE(image,'') AS image,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM lessons
	  WHERE LOWER(subject) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)
	  ORDER BY subject
	`, like, like)
	return out, err
}

func (r *LessonRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM lessons`)
	return n, err
}

// Insert stores one lesson and returns its store-assigned id.
func (r *LessonRepo) Insert(ctx context.Context, l domain.Lesson) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	  INSERT INTO lessons(subject, location, price, spaces, description, image, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, l.Subject, l.Location, l.Price, l.Spaces, l.Description, l.Image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteAll unconditionally clears the catalog (full replace semantics).
func (r *LessonRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lessons`)
	return err
}

func (r *LessonRepo) Spaces(id int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT spaces FROM lessons WHERE id = ?`, id)
	return n, err
}

// ReserveSpaces atomically subtracts "by" spaces if enough remain.
// Returns an error when the lesson is unknown or over-booked.
func (r *LessonRepo) ReserveSpaces(id int64, by int) error {
	res, err := r.db.Exec(`
	  UPDATE lessons
	  SET spaces = spaces - ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND spaces >= ?
	`, by, id, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("insufficient spaces for lesson %d", id)
	}
	return nil
}
