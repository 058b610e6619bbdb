package services

import (
	"context"

	"github.com/bookhubb/bookhub/internal/client/auth"
	"github.com/bookhubb/bookhub/internal/client/client"
	"github.com/bookhubb/bookhub/internal/client/models"
)

// IdentityResolver turns a credential into the identity the API confirms.
//
// Decoding failures return *auth.DecodeError. API failures return
// *AuthResolutionError.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*models.User, error)
}

type identityResolver struct {
	client client.Client
}

func NewIdentityResolver(c client.Client) IdentityResolver {
	return &identityResolver{client: c}
}

// Resolve decodes the credential's claims without verifying them and asks
// the API for the referenced user. The decoded subject only addresses the
// request; the returned identity comes entirely from the response.
func (r *identityResolver) Resolve(ctx context.Context, credential string) (*models.User, error) {
	claims, err := auth.DecodeClaims(credential)
	if err != nil {
		return nil, err
	}

	subject := claims.SubjectID()
	user, err := r.client.GetUser(ctx, credential, subject)
	if err != nil {
		return nil, &AuthResolutionError{UserID: subject, Err: err}
	}
	return user, nil
}
