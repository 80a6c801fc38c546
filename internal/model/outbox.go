package model

import "time"

type Outbox struct {
	ID          string     `gorm:"primaryKey;type:uuid"`
	Topic       string     `gorm:"not null"`
	Key         string     `gorm:"not null"`
	Payload     []byte     `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (Outbox) TableName() string { return "outbox" }
