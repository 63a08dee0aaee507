package ports

import "github.com/everafter/planner-api/internal/core/domain"

// TokenIssuer mints a signed identity token for a principal reference.
// Issuing performs no persistence; the token is valid until its optional
// expiry regardless of later principal deletion.
type TokenIssuer interface {
	Issue(ref domain.PrincipalRef) (string, error)
}

// TokenVerifier validates signature and format only. Whether the referenced
// principal still exists is the auth middleware's job.
type TokenVerifier interface {
	Verify(token string) (domain.PrincipalRef, error)
}
