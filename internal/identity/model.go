package identity

import "time"

// User represents a registered account holder. Registration creates the
// record with only phone and credential; the remaining fields are filled in
// as the holder progresses through onboarding.
type User struct {
	ID            string
	Username      string
	CivilID       string
	Phone         string
	Name          string
	Address       string
	PasswordHash  []byte
	TermsAccepted bool
	CreatedAt     time.Time
}

// Profile carries the fields overwritten by profile completion. All three
// are applied unconditionally, empty values included.
type Profile struct {
	Name    string
	Address string
	Phone   string
}
