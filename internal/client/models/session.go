package models

// Session is the currently authenticated identity. It refers to an
// Account by email and caches the role the gate needs; it owns nothing.
type Session struct {
	Email string
	Role  Role
}

// NewSession builds a Session for acc.
func NewSession(acc Account) *Session {
	return &Session{Email: acc.Email, Role: acc.Role}
}

// IsAdmin reports whether s carries the admin capability. A nil session
// is never admin.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
