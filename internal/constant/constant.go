package constant

const (
	// UserIDAuthorizationRealm is the realm prefix expected in the Authorization header.
	// The mobile client sends the opaque user id issued by the identity provider as
	// `Authorization: MDUserID <id>`.
	UserIDAuthorizationRealm = "MDUserID"

	// UserIDCookieKey is the fallback cookie the user id is read from when the
	// Authorization header is absent.
	UserIDCookieKey = "mdUserID"

	// UserIDSetHeader echoes the user id back to clients that cannot use cookies.
	UserIDSetHeader = "X-MD-Set-UserID"

	// RequestIDHeader carries the per-request id generated by the logger middleware.
	RequestIDHeader = "X-MD-Request-ID"

	// ContextKeyRequestID is the fiber#Locals key the request id is stored under.
	ContextKeyRequestID = "requestid"
)

const (
	// LikeMaxDelta caps a single like's score contribution.
	LikeMaxDelta = 5
)
