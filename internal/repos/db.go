package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Single connection for SQLite to avoid locking issues.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Lessons catalog. Rows are created exclusively by the seeder; ids are
-- store-assigned.
CREATE TABLE IF NOT EXISTS lessons(
  id INTEGER PRIMARY KEY,
  subject TEXT NOT NULL,
  location TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  spaces INTEGER NOT NULL CHECK (spaces >= 0),
  description TEXT,
  image TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_lessons_subject  ON lessons(LOWER(subject));
CREATE INDEX IF NOT EXISTS idx_lessons_location ON lessons(LOWER(location));

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

-- Line items live inline with their order. lesson_id is intentionally not a
-- foreign key: the seeder bulk-replaces lessons, so referential integrity is
-- an application expectation rather than a store constraint.
CREATE TABLE IF NOT EXISTS order_items(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  lesson_id INTEGER NOT NULL,
  spaces INTEGER NOT NULL CHECK (spaces >= 1),
  PRIMARY KEY (order_id, lesson_id)
);
`
	_, err := db.Exec(schema)
	return err
}
