package usecase

// TokenGenerator issues signed bearer tokens carrying {id, role}.
type TokenGenerator interface {
	Generate(id, role string) (string, error)
}

// GoogleVerifier validates a Google ID token and returns the identity claims
// this service needs.
type GoogleVerifier interface {
	VerifyIDToken(idToken string) (email, firstName, lastName string, err error)
}
