package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. Listing filters on owner and status and
// sorts by creation time, hence the composite index.
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Status      string    `gorm:"type:varchar(20);not null;default:'TODO';index:idx_tasks_user_status"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_tasks_user_created;index:idx_tasks_user_status"`
	CreatedAt   time.Time `gorm:"index:idx_tasks_user_created,sort:desc"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&TaskModel{},
		&RefreshTokenModel{},
	}
}
