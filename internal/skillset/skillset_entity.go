package skillset

import "time"

type Skillset struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex"`
	Description *string
	CreatedAt   time.Time
}
