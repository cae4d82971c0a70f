package auth

// Identity represents user information confirmed by the external identity
// provider. SubjectID is the provider's stable subject id and is stored as
// the user's identity key.
type Identity struct {
	SubjectID string
	Email     string
	Name      *string
	AvatarURL *string
}
