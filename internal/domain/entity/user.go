// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account record: identity, credentials and confirmation state.
type User struct {
	ID               int64  // Store-assigned identifier.
	FirstName        string // Given name as submitted on registration.
	LastName         string // Family name as submitted on registration.
	Email            string // Globally unique contact address.
	Username         string // Derived from name fragments; not unique.
	PasswordHash     string // bcrypt hash of the password.
	Role             string // Free-text classifier, e.g. "student".
	ConfirmationCode string // Code mailed at registration.
	IsConfirmed      bool   // Set once the confirmation code was presented.
}

// usernamePartLen is how many characters each name contributes to a username.
const usernamePartLen = 2

// DeriveUsername builds a username from the first two characters of firstName
// and the last two characters of lastName. Shorter names contribute what they have.
func DeriveUsername(firstName, lastName string) string {
	first := []rune(firstName)
	last := []rune(lastName)

	if len(first) > usernamePartLen {
		first = first[:usernamePartLen]
	}
	if len(last) > usernamePartLen {
		last = last[len(last)-usernamePartLen:]
	}

	return string(first) + string(last)
}
