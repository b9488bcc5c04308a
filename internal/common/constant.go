package common

// Storage keys. DefaultDocumentKey names the single durable document; the
// other two are small remembered scalars stored next to it.
const (
	DefaultDocumentKey = "ipt_demo_v1"
	AuthTokenKey       = "auth_token"
	UnverifiedEmailKey = "unverified_email"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6
