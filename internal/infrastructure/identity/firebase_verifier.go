package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type FirebaseVerifier struct {
	authClient *auth.Client
}

func NewFirebaseVerifier(authClient *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{authClient: authClient}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	idToken, err := v.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return idToken.UID, nil
}
