package entities

import "strings"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Session identifies the caller of a request. Handlers build it from request
// headers and pass it explicitly to every use case that reads or writes on the
// caller's behalf.
type Session struct {
	UserID string
	Role   Role
	Token  string
}

func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.UserID) != "" && strings.TrimSpace(s.Token) != ""
}
