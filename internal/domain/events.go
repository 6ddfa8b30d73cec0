package domain

// Inbound platform events, produced by the gateway and consumed by the
// event router.

// MessageEvent is one chat message observed by the bot.
type MessageEvent struct {
	AuthorID   int64  `json:"author_id"`
	ResourceID int64  `json:"resource_id"`
	Text       string `json:"text"`
	AuthorBot  bool   `json:"author_bot"`
	// TrackingResource is set when the message arrived in a resource the
	// platform integration created for reply tracking.
	TrackingResource bool `json:"tracking_resource"`
}

// RoleGrantEvent fires when a member gains a role.
type RoleGrantEvent struct {
	MemberID int64  `json:"member_id"`
	Role     string `json:"role"`
}

// MemberRemoveEvent fires when a member leaves the server.
type MemberRemoveEvent struct {
	MemberID int64 `json:"member_id"`
}
