package googleauth

import (
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"rebuy/pkg/logger"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// Identity is the subset of a Google ID token this service cares about.
type Identity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
}

type googleClaims struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	jwt.RegisteredClaims
}

// Verifier checks Google-issued ID tokens against Google's JWKS.
type Verifier struct {
	jwks     *keyfunc.JWKS
	clientID string
}

func NewVerifier(clientID string) (*Verifier, error) {
	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: 5 * time.Minute,
		RefreshErrorHandler: func(err error) {
			logger.Warn("Google JWKS refresh failed: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching Google JWKS: %w", err)
	}

	return &Verifier{
		jwks:     jwks,
		clientID: clientID,
	}, nil
}

func (v *Verifier) Verify(idToken string) (*Identity, error) {
	claims := &googleClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, v.jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("parsing Google ID token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid Google ID token")
	}

	issuer := claims.Issuer
	if issuer != "accounts.google.com" && issuer != "https://accounts.google.com" {
		return nil, fmt.Errorf("unexpected issuer: %s", issuer)
	}

	if v.clientID != "" && !contains(claims.Audience, v.clientID) {
		return nil, fmt.Errorf("token audience does not match client ID")
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("Google ID token has no email claim")
	}

	return &Identity{
		Subject:   claims.Subject,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
	}, nil
}

// VerifyIDToken adapts Verify to the shape the auth use case consumes.
func (v *Verifier) VerifyIDToken(idToken string) (string, string, string, error) {
	identity, err := v.Verify(idToken)
	if err != nil {
		return "", "", "", err
	}
	return identity.Email, identity.FirstName, identity.LastName, nil
}

func (v *Verifier) Close() {
	v.jwks.EndBackground()
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
