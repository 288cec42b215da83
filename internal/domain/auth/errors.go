package auth

import "errors"

// Auth surface errors. Token issuance lives in the external identity
// service; this backend only verifies.
var (
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
