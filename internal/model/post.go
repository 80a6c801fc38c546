package model

type Post struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	AuthorID string `gorm:"not null;index;type:uuid" json:"authorId"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string { return "posts" }

type CreatePost struct {
	Title    string
	Content  string
	AuthorID string `validate:"required"`
}

type PostChanges struct {
	Title   *string
	Content *string
}

func (c PostChanges) Columns() map[string]any {
	cols := map[string]any{}
	if c.Title != nil {
		cols["title"] = *c.Title
	}
	if c.Content != nil {
		cols["content"] = *c.Content
	}
	return cols
}
