package outbox

// Topics written by the services, one per aggregate change.
const (
	TopicUserCreated = "user.created"
	TopicUserUpdated = "user.updated"
	TopicUserDeleted = "user.deleted"

	TopicPostCreated = "post.created"
	TopicPostUpdated = "post.updated"
	TopicPostDeleted = "post.deleted"

	TopicProfileCreated = "profile.created"
	TopicProfileUpdated = "profile.updated"
	TopicProfileDeleted = "profile.deleted"

	TopicSubscriptionCreated = "subscription.created"
	TopicSubscriptionDeleted = "subscription.deleted"
)

// Deleted is the payload of every *.deleted event.
type Deleted struct {
	ID string `json:"id"`
}

// SubscriptionEvent is the payload of subscription.* events.
type SubscriptionEvent struct {
	SubscriberID string `json:"subscriberId"`
	AuthorID     string `json:"authorId"`
}
