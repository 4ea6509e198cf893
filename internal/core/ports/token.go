package ports

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	UserID string
	Role   string
}

// TokenIssuer creates and verifies signed bearer tokens. Verification
// failures collapse to a single error so callers cannot distinguish expiry
// from tampering.
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (Claims, error)
}
