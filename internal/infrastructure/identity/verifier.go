package identity

import (
	"context"
)

// Verifier turns an opaque bearer token into the identity provider's stable
// subject id. The engine never inspects tokens beyond this.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
