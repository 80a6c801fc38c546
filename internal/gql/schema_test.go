package gql

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	aliceID = "11111111-1111-4111-8111-111111111111"
	bobID   = "22222222-2222-4222-8222-222222222222"
	postID  = "33333333-3333-4333-8333-333333333333"
	profID  = "44444444-4444-4444-8444-444444444444"
)

type fixture struct {
	users    *MockUsers
	posts    *MockPosts
	profiles *MockProfiles
	types    *MockMemberTypes
	exec     *Executor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:    new(MockUsers),
		posts:    new(MockPosts),
		profiles: new(MockProfiles),
		types:    new(MockMemberTypes),
	}
	schema, err := NewSchema(Services{
		Users:       f.users,
		Posts:       f.posts,
		Profiles:    f.profiles,
		MemberTypes: f.types,
	})
	require.NoError(t, err)
	f.exec = NewExecutor(schema, DefaultDepthLimit)
	return f
}

func (f *fixture) run(t *testing.T, query string, vars map[string]interface{}) (*Response, string) {
	t.Helper()
	res := f.exec.Execute(context.Background(), Request{Query: query, Variables: vars})
	b, err := json.Marshal(res)
	require.NoError(t, err)
	return res, string(b)
}

func errCodes(res *Response) []interface{} {
	var out []interface{}
	for _, e := range res.Errors {
		out = append(out, e.Extensions["code"])
	}
	return out
}

func TestQuery_ListsPassThrough(t *testing.T) {
	f := newFixture(t)
	f.users.On("List", mock.Anything).Return([]*model.User{{ID: aliceID, Name: "alice", Balance: 1.5}}, nil)
	f.posts.On("List", mock.Anything).Return([]*model.Post{{ID: postID, Title: "t", Content: "c", AuthorID: aliceID}}, nil)
	f.types.On("List", mock.Anything).Return([]*model.MemberType{
		{ID: model.MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20},
	}, nil)
	f.profiles.On("List", mock.Anything).Return([]*model.Profile{}, nil)

	res, body := f.run(t, `{
		users { id name balance }
		posts { id title content authorId }
		memberTypes { id discount postsLimitPerMonth }
		profiles { id }
	}`, nil)

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{
		"users":[{"id":"`+aliceID+`","name":"alice","balance":1.5}],
		"posts":[{"id":"`+postID+`","title":"t","content":"c","authorId":"`+aliceID+`"}],
		"memberTypes":[{"id":"BASIC","discount":2.3,"postsLimitPerMonth":20}],
		"profiles":[]
	}}`, body)
}

func TestQuery_UserWithRelations(t *testing.T) {
	f := newFixture(t)
	alice := &model.User{ID: aliceID, Name: "alice", Balance: 10}
	bob := &model.User{ID: bobID, Name: "bob"}

	f.users.On("Get", mock.Anything, aliceID).Return(alice, nil)
	f.profiles.On("GetByUserID", mock.Anything, aliceID).Return(&model.Profile{
		ID: profID, IsMale: false, YearOfBirth: 1990, UserID: aliceID, MemberTypeID: model.MemberTypeBusiness,
	}, nil)
	f.types.On("Get", mock.Anything, model.MemberTypeBusiness).Return(&model.MemberType{
		ID: model.MemberTypeBusiness, Discount: 7.7, PostsLimitPerMonth: 100,
	}, nil)
	f.posts.On("ListByAuthor", mock.Anything, aliceID).Return([]*model.Post{{ID: postID, Title: "hello", AuthorID: aliceID}}, nil)
	f.users.On("SubscribedTo", mock.Anything, aliceID).Return([]*model.User{bob}, nil)
	f.users.On("Subscribers", mock.Anything, aliceID).Return([]*model.User{}, nil)
	f.users.On("Subscribers", mock.Anything, bobID).Return([]*model.User{alice}, nil)

	res, body := f.run(t, `query ($id: UUID!) {
		user(id: $id) {
			name
			profile { yearOfBirth isMale userId memberTypeId memberType { discount postsLimitPerMonth } }
			posts { title }
			userSubscribedTo { name subscribedToUser { name } }
			subscribedToUser { id }
		}
	}`, map[string]interface{}{"id": aliceID})

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"user":{
		"name":"alice",
		"profile":{"yearOfBirth":1990,"isMale":false,"userId":"`+aliceID+`","memberTypeId":"BUSINESS",
			"memberType":{"discount":7.7,"postsLimitPerMonth":100}},
		"posts":[{"title":"hello"}],
		"userSubscribedTo":[{"name":"bob","subscribedToUser":[{"name":"alice"}]}],
		"subscribedToUser":[]
	}}}`, body)
}

func TestQuery_MissingRowsResolveToNull(t *testing.T) {
	f := newFixture(t)
	f.users.On("Get", mock.Anything, aliceID).Return(nil, model.ErrUserNotFound)
	f.posts.On("Get", mock.Anything, postID).Return(nil, model.ErrPostNotFound)
	f.profiles.On("Get", mock.Anything, profID).Return(nil, model.ErrProfileNotFound)
	f.types.On("Get", mock.Anything, model.MemberTypeBasic).Return(nil, model.ErrMemberTypeNotFound)

	res, body := f.run(t, `{
		user(id: "`+aliceID+`") { id }
		post(id: "`+postID+`") { id }
		profile(id: "`+profID+`") { id }
		memberType(id: "BASIC") { id }
	}`, nil)

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"user":null,"post":null,"profile":null,"memberType":null}}`, body)
}

func TestQuery_UserWithoutProfile(t *testing.T) {
	f := newFixture(t)
	f.users.On("Get", mock.Anything, aliceID).Return(&model.User{ID: aliceID}, nil)
	f.profiles.On("GetByUserID", mock.Anything, aliceID).Return(nil, model.ErrProfileNotFound)

	res, body := f.run(t, `{ user(id: "`+aliceID+`") { profile { id } } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"user":{"profile":null}}}`, body)
}

func TestQuery_RejectsInvalidScalars(t *testing.T) {
	tests := []struct {
		name  string
		query string
		vars  map[string]interface{}
	}{
		{name: "uuid literal", query: `{ user(id: "nope") { id } }`},
		{name: "uuid int literal", query: `{ user(id: 7) { id } }`},
		{name: "uuid variable", query: `query ($id: UUID!) { user(id: $id) { id } }`, vars: map[string]interface{}{"id": "nope"}},
		{name: "member type literal", query: `{ memberType(id: "GOLD") { id } }`},
		{name: "member type enum literal", query: `{ memberType(id: BASIC) { id } }`},
		{name: "member type variable", query: `query ($id: MemberTypeId!) { memberType(id: $id) { id } }`, vars: map[string]interface{}{"id": "basic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res, _ := f.run(t, tt.query, tt.vars)
			assert.NotEmpty(t, res.Errors)
			f.users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
			f.types.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestMutation_CreateUser(t *testing.T) {
	f := newFixture(t)
	f.users.On("Create", mock.Anything, model.CreateUser{Name: "alice", Balance: 5}).
		Return(&model.User{ID: aliceID, Name: "alice", Balance: 5}, nil)

	res, body := f.run(t, `mutation ($dto: CreateUserInput!) { createUser(dto: $dto) { id name balance } }`,
		map[string]interface{}{"dto": map[string]interface{}{"name": "alice", "balance": 5}})

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"createUser":{"id":"`+aliceID+`","name":"alice","balance":5}}}`, body)
}

func TestMutation_CreateUserRequiresFields(t *testing.T) {
	f := newFixture(t)
	res, _ := f.run(t, `mutation { createUser(dto: {name: "alice"}) { id } }`, nil)
	assert.NotEmpty(t, res.Errors)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMutation_ChangeIsPartial(t *testing.T) {
	f := newFixture(t)
	name := "alicia"
	f.users.On("Update", mock.Anything, aliceID, model.UserChanges{Name: &name}).
		Return(&model.User{ID: aliceID, Name: "alicia", Balance: 9}, nil)

	title := "new"
	f.posts.On("Update", mock.Anything, postID, model.PostChanges{Title: &title}).
		Return(&model.Post{ID: postID, Title: "new", Content: "old"}, nil)

	year := 2001
	business := model.MemberTypeBusiness
	f.profiles.On("Update", mock.Anything, profID, model.ProfileChanges{YearOfBirth: &year, MemberTypeID: &business}).
		Return(&model.Profile{ID: profID, YearOfBirth: 2001, MemberTypeID: business}, nil)

	res, body := f.run(t, `mutation {
		changeUser(id: "`+aliceID+`", dto: {name: "alicia"}) { name balance }
		changePost(id: "`+postID+`", dto: {title: "new"}) { title content }
		changeProfile(id: "`+profID+`", dto: {yearOfBirth: 2001, memberTypeId: "BUSINESS"}) { yearOfBirth memberTypeId }
	}`, nil)

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{
		"changeUser":{"name":"alicia","balance":9},
		"changePost":{"title":"new","content":"old"},
		"changeProfile":{"yearOfBirth":2001,"memberTypeId":"BUSINESS"}
	}}`, body)
}

func TestMutation_ChangeMissingRowIsNotFound(t *testing.T) {
	f := newFixture(t)
	f.users.On("Update", mock.Anything, aliceID, mock.Anything).Return(nil, model.ErrUserNotFound)

	res, body := f.run(t, `mutation { changeUser(id: "`+aliceID+`", dto: {balance: 1}) { id } }`, nil)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, []interface{}{CodeNotFound}, errCodes(res))
	assert.Equal(t, "user not found", res.Errors[0].Message)
	assert.Contains(t, body, `"changeUser":null`)
}

func TestMutation_Deletes(t *testing.T) {
	f := newFixture(t)
	f.users.On("Delete", mock.Anything, aliceID).Return(nil)
	f.posts.On("Delete", mock.Anything, postID).Return(nil)
	f.profiles.On("Delete", mock.Anything, profID).Return(nil)

	res, body := f.run(t, `mutation {
		deleteUser(id: "`+aliceID+`")
		deletePost(id: "`+postID+`")
		deleteProfile(id: "`+profID+`")
	}`, nil)

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"deleteUser":true,"deletePost":true,"deleteProfile":true}}`, body)
}

func TestMutation_DeleteMissingNullsData(t *testing.T) {
	f := newFixture(t)
	f.posts.On("Delete", mock.Anything, postID).Return(model.ErrPostNotFound)

	res, body := f.run(t, `mutation { deletePost(id: "`+postID+`") }`, nil)

	assert.Equal(t, []interface{}{CodeNotFound}, errCodes(res))
	// Boolean! cannot be null so the error propagates to data
	assert.Contains(t, body, `"data":null`)
}

func TestMutation_CreateUserWithEmptyName(t *testing.T) {
	f := newFixture(t)
	f.users.On("Create", mock.Anything, model.CreateUser{Name: "", Balance: 0}).
		Return(&model.User{ID: aliceID}, nil)

	res, body := f.run(t, `mutation { createUser(dto: {name: "", balance: 0}) { id name balance } }`, nil)

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"createUser":{"id":"`+aliceID+`","name":"","balance":0}}}`, body)
	f.users.AssertExpectations(t)
}

func TestMutation_CreatePostAndProfile(t *testing.T) {
	f := newFixture(t)
	f.posts.On("Create", mock.Anything, model.CreatePost{Title: "t", Content: "c", AuthorID: aliceID}).
		Return(&model.Post{ID: postID, Title: "t", Content: "c", AuthorID: aliceID}, nil)

	male, year := true, 1985
	f.profiles.On("Create", mock.Anything, model.CreateProfile{
		IsMale: &male, YearOfBirth: &year, UserID: aliceID, MemberTypeID: model.MemberTypeBasic,
	}).Return(&model.Profile{ID: profID, IsMale: true, YearOfBirth: 1985, UserID: aliceID, MemberTypeID: model.MemberTypeBasic}, nil)

	res, body := f.run(t, `mutation ($post: CreatePostInput!, $profile: CreateProfileInput!) {
		createPost(dto: $post) { id authorId }
		createProfile(dto: $profile) { id memberTypeId }
	}`, map[string]interface{}{
		"post":    map[string]interface{}{"title": "t", "content": "c", "authorId": aliceID},
		"profile": map[string]interface{}{"isMale": true, "yearOfBirth": 1985, "userId": aliceID, "memberTypeId": "BASIC"},
	})

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{
		"createPost":{"id":"`+postID+`","authorId":"`+aliceID+`"},
		"createProfile":{"id":"`+profID+`","memberTypeId":"BASIC"}
	}}`, body)
}

func TestMutation_ErrorCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{name: "conflict", err: model.ErrConflict, code: CodeConflict, message: "already exists"},
		{name: "bad reference", err: model.ErrInvalidReference, code: CodeBadUserInput, message: "referenced record does not exist"},
		{name: "invalid input", err: model.ErrInvalidInput, code: CodeBadUserInput, message: "invalid input"},
		{name: "unexpected", err: errors.New("connection reset"), code: CodeInternal, message: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.profiles.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			res, _ := f.run(t, `mutation { createProfile(dto: {userId: "`+aliceID+`"}) { id } }`, nil)

			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.message, res.Errors[0].Message)
			assert.Equal(t, []interface{}{tt.code}, errCodes(res))
		})
	}
}

func TestMutation_Subscriptions(t *testing.T) {
	f := newFixture(t)
	f.users.On("SubscribeTo", mock.Anything, aliceID, bobID).Return(&model.User{ID: aliceID, Name: "alice"}, nil)
	f.users.On("UnsubscribeFrom", mock.Anything, aliceID, bobID).Return(nil)

	res, body := f.run(t, `mutation {
		subscribeTo(userId: "`+aliceID+`", authorId: "`+bobID+`") { id name }
		unsubscribeFrom(userId: "`+aliceID+`", authorId: "`+bobID+`")
	}`, nil)

	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"data":{"subscribeTo":{"id":"`+aliceID+`","name":"alice"},"unsubscribeFrom":true}}`, body)
	f.users.AssertExpectations(t)
}

func TestExecutor_DepthLimitStopsExecution(t *testing.T) {
	f := newFixture(t)

	res, body := f.run(t, `query Deep { users { userSubscribedTo { subscribedToUser { userSubscribedTo { subscribedToUser { posts { id } } } } } } }`, nil)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "'Deep' exceeds maximum operation depth of 5", res.Errors[0].Message)
	assert.NotContains(t, body, `"data"`)
	f.users.AssertNotCalled(t, "List", mock.Anything)
}

func TestExecutor_ParseAndValidationErrors(t *testing.T) {
	f := newFixture(t)

	res, body := f.run(t, `{ users { id `, nil)
	require.NotEmpty(t, res.Errors)
	assert.NotContains(t, body, `"data"`)

	res, body = f.run(t, `{ users { unknownField } }`, nil)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "unknownField")
	assert.NotContains(t, body, `"data"`)
	f.users.AssertNotCalled(t, "List", mock.Anything)
}

func TestExecutor_Introspection(t *testing.T) {
	f := newFixture(t)

	res, body := f.run(t, `{ __type(name: "Profiles") { name fields { name } } }`, nil)
	require.Empty(t, res.Errors)
	for _, field := range []string{"memberType", "memberTypeId", "userId", "yearOfBirth", "isMale"} {
		assert.Contains(t, body, `"`+field+`"`)
	}
}
