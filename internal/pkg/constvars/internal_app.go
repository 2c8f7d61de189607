package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY    ContextKey = "requestID"
	CONTEXT_CLAIMED_EMAIL_KEY ContextKey = "claimedEmail"
)

const (
	RoleAdmin = "admin"
)

const (
	// RedisKeyUserRoleFormat keys the cached role lookup by user email.
	RedisKeyUserRoleFormat = "user_role:%s"
)
