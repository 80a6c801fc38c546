package model

// Subscription links a subscriber to an author. The pair is the primary key.
type Subscription struct {
	SubscriberID string `gorm:"primaryKey;type:uuid" json:"subscriberId"`
	AuthorID     string `gorm:"primaryKey;type:uuid;index" json:"authorId"`

	Subscriber *User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	Author     *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Subscription) TableName() string { return "subscribers_on_authors" }
