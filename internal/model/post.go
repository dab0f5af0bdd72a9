package model

import "time"

type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Title  string `gorm:"size:50;not null" json:"title"`
	Body   string `gorm:"size:300;not null" json:"body"`
	// CreatedAt is stamped once by the service in the configured time zone,
	// never touched on update.
	CreatedAt time.Time `json:"created_at"`

	Author User  `gorm:"foreignKey:UserID" json:"author"`
	Tags   []Tag `gorm:"many2many:tags;" json:"tags"`
}

func (Post) TableName() string { return "post" }
