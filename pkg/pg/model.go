package pg

import "time"

// Audit carries the two timestamp columns every core table has. The
// persistence layer owns them: created once at insert, refreshed on every
// update, never operator-editable.
type Audit struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
