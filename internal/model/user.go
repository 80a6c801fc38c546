package model

type User struct {
	ID      string  `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Balance float64 `gorm:"not null" json:"balance"`
}

func (User) TableName() string { return "users" }

type CreateUser struct {
	Name    string
	Balance float64
}

// UserChanges carries a partial update; nil fields are left untouched.
type UserChanges struct {
	Name    *string
	Balance *float64
}

func (c UserChanges) Columns() map[string]any {
	cols := map[string]any{}
	if c.Name != nil {
		cols["name"] = *c.Name
	}
	if c.Balance != nil {
		cols["balance"] = *c.Balance
	}
	return cols
}
