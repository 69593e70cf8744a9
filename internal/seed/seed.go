package seed

import (
	"context"
	"fmt"

	"afterschool/internal/repos"
	"afterschool/internal/validate"

	"github.com/jmoiron/sqlx"
)

// Run resets the lessons catalog to the fixed dataset: delete everything,
// then insert the dataset row by row. It is a blunt administrative replace —
// the two steps are deliberately not wrapped in a transaction, so a failure
// mid-insert leaves the catalog partial and the run must be repeated.
// Returns the number of lessons inserted.
func Run(ctx context.Context, db *sqlx.DB) (int, error) {
	lessons := repos.NewLessonRepo(db)

	if err := lessons.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear lessons: %w", err)
	}

	inserted := 0
	for _, l := range Lessons() {
		if err := validate.Lesson(&l); err != nil {
			return inserted, fmt.Errorf("seed dataset entry %q: %w", l.Subject, err)
		}
		if _, err := lessons.Insert(ctx, l); err != nil {
			return inserted, fmt.Errorf("insert lesson %q: %w", l.Subject, err)
		}
		inserted++
	}
	return inserted, nil
}
