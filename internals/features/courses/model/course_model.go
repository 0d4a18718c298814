package model

import "time"

type CourseModel struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	Instructor  string    `gorm:"column:instructor;type:varchar(255);not null" json:"instructor"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName sets the table name for CourseModel
func (CourseModel) TableName() string {
	return "courses"
}
