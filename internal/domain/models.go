package domain

// Lesson is a purchasable catalog entry with a fixed bookable capacity.
// Spaces is the remaining capacity, not the original class size.
type Lesson struct {
	ID          int64   `db:"id" json:"id"`
	Subject     string  `db:"subject" json:"subject"`
	Location    string  `db:"location" json:"location"`
	Price       float64 `db:"price" json:"price"`
	Spaces      int     `db:"spaces" json:"spaces"`
	Description string  `db:"description" json:"description,omitempty"`
	Image       string  `db:"image" json:"image,omitempty"`
	CreatedAt   string  `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt,omitempty"`
}

// OrderItem reserves Spaces units against one lesson. Items are stored inline
// with their parent order and have no identity of their own.
type OrderItem struct {
	LessonID int64 `db:"lesson_id" json:"lessonId"`
	Spaces   int   `db:"spaces" json:"spaces"`
}

type Order struct {
	ID        string      `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Phone     string      `db:"phone" json:"phone"`
	Email     string      `db:"email" json:"email,omitempty"`
	Items     []OrderItem `db:"-" json:"items"`
	CreatedAt string      `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt string      `db:"updated_at" json:"updatedAt,omitempty"`
}
