package model

type MemberTypeID string

const (
	MemberTypeBasic    MemberTypeID = "BASIC"
	MemberTypeBusiness MemberTypeID = "BUSINESS"
)

func (id MemberTypeID) Valid() bool {
	return id == MemberTypeBasic || id == MemberTypeBusiness
}

type MemberType struct {
	ID                 MemberTypeID `gorm:"primaryKey" json:"id"`
	Discount           float64      `gorm:"not null" json:"discount"`
	PostsLimitPerMonth int          `gorm:"not null" json:"postsLimitPerMonth"`
}

func (MemberType) TableName() string { return "member_types" }

// DefaultMemberTypes is the reference data seeded by the migrate command.
var DefaultMemberTypes = []MemberType{
	{ID: MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20},
	{ID: MemberTypeBusiness, Discount: 7.7, PostsLimitPerMonth: 100},
}
