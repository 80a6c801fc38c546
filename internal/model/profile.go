package model

type Profile struct {
	ID           string       `gorm:"primaryKey;type:uuid" json:"id"`
	IsMale       bool         `gorm:"not null" json:"isMale"`
	YearOfBirth  int          `gorm:"not null" json:"yearOfBirth"`
	UserID       string       `gorm:"not null;uniqueIndex;type:uuid" json:"userId"`
	MemberTypeID MemberTypeID `gorm:"not null;index" json:"memberTypeId"`

	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MemberType *MemberType `gorm:"foreignKey:MemberTypeID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Profile) TableName() string { return "profiles" }

// CreateProfile mirrors the GraphQL input where every field is nullable, so
// presence is enforced here rather than by the schema.
type CreateProfile struct {
	IsMale       *bool        `validate:"required"`
	YearOfBirth  *int         `validate:"required"`
	UserID       string       `validate:"required"`
	MemberTypeID MemberTypeID `validate:"required"`
}

type ProfileChanges struct {
	IsMale       *bool
	YearOfBirth  *int
	MemberTypeID *MemberTypeID
}

func (c ProfileChanges) Columns() map[string]any {
	cols := map[string]any{}
	if c.IsMale != nil {
		cols["is_male"] = *c.IsMale
	}
	if c.YearOfBirth != nil {
		cols["year_of_birth"] = *c.YearOfBirth
	}
	if c.MemberTypeID != nil {
		cols["member_type_id"] = *c.MemberTypeID
	}
	return cols
}
