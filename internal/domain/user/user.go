package user

// User is the identity resolved from the auth provider. It is never stored by
// this service. ID is the provider's subject, kept opaque.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
