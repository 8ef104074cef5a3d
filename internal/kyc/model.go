package kyc

import "time"

// StatusPending is the only status this service ever writes. Advancement
// past pending belongs to the external review pipeline.
const StatusPending = "pending"

// Verification is a single KYC case. A user may accumulate several
// independent cases; each initiation call opens a new one.
type Verification struct {
	ID           string
	UserID       string
	Status       string
	DocumentURL  string
	BiometricRef string
	CreatedAt    time.Time
}
