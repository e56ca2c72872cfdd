package switchyard

import "time"

type Modelable interface {
	Exists() bool
}

// A Model is the essential data points for primary ID-based records in a
// switchyard application, indicating when a record was created and last updated.
type Model struct {
	ID        uint      `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }
