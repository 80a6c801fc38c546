package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsWrapNotFound(t *testing.T) {
	for _, err := range []error{
		ErrUserNotFound,
		ErrPostNotFound,
		ErrProfileNotFound,
		ErrMemberTypeNotFound,
		ErrSubscriptionNotFound,
	} {
		assert.True(t, errors.Is(err, ErrNotFound), err.Error())
	}
	assert.Equal(t, "user not found", ErrUserNotFound.Error())
}

func TestMemberTypeIDValid(t *testing.T) {
	assert.True(t, MemberTypeBasic.Valid())
	assert.True(t, MemberTypeBusiness.Valid())
	assert.False(t, MemberTypeID("PREMIUM").Valid())
	assert.False(t, MemberTypeID("basic").Valid())
}

func TestValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		err := Validate(CreatePost{
			Title:    "t",
			Content:  "c",
			AuthorID: "0b0f7a5e-1a7c-4d89-9c2b-6f3f1f0e2a11",
		})
		require.NoError(t, err)
	})

	t.Run("empty title and content are allowed", func(t *testing.T) {
		require.NoError(t, Validate(CreatePost{AuthorID: "0b0f7a5e-1a7c-4d89-9c2b-6f3f1f0e2a11"}))
		require.NoError(t, Validate(CreateUser{}))
	})

	t.Run("missing author", func(t *testing.T) {
		err := Validate(CreatePost{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "AuthorID")
		assert.NotContains(t, err.Error(), "Title")
	})

	t.Run("profile requires explicit flags", func(t *testing.T) {
		err := Validate(CreateProfile{UserID: "u", MemberTypeID: MemberTypeBasic})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "IsMale")
		assert.Contains(t, err.Error(), "YearOfBirth")

		male, year := false, 1990
		err = Validate(CreateProfile{IsMale: &male, YearOfBirth: &year, UserID: "u", MemberTypeID: MemberTypeBasic})
		require.NoError(t, err)
	})
}

func TestChangesColumns(t *testing.T) {
	name := "alice"
	cols := UserChanges{Name: &name}.Columns()
	assert.Equal(t, map[string]any{"name": "alice"}, cols)

	assert.Empty(t, PostChanges{}.Columns())

	id := MemberTypeBusiness
	male := true
	cols = ProfileChanges{IsMale: &male, MemberTypeID: &id}.Columns()
	assert.Equal(t, map[string]any{"is_male": true, "member_type_id": MemberTypeBusiness}, cols)
}
