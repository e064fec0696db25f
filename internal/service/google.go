package service

import (
	"context"
	"net/url"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/islamic"
)

type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleVerifier validates id tokens with Google's tokeninfo endpoint.
type GoogleVerifier struct {
	client   islamic.Fetcher
	clientID string
}

// NewGoogleVerifier expects client to point at the tokeninfo host. An empty clientID skips the audience check.
func NewGoogleVerifier(client islamic.Fetcher, clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		client:   client,
		clientID: clientID,
	}
}

func (gv *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	resp, ok := gv.client.Fetch(ctx, fetcher.MethodGet, "tokeninfo", &fetcher.RequestOptions{
		Query: url.Values{"id_token": {idToken}},
	})
	if !ok {
		return nil, errorvalues.ErrGoogleTokenInvalid
	}
	if gv.clientID != "" && resp.Get("aud").String() != gv.clientID {
		return nil, errorvalues.ErrGoogleTokenInvalid
	}
	identity := &GoogleIdentity{
		Subject:       resp.Get("sub").String(),
		Email:         resp.Get("email").String(),
		EmailVerified: resp.Get("email_verified").Bool(),
		Name:          resp.Get("name").String(),
		Picture:       resp.Get("picture").String(),
	}
	if identity.Subject == "" || identity.Email == "" {
		return nil, errorvalues.ErrGoogleTokenInvalid
	}
	return identity, nil
}
