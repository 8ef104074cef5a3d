package bank

import "time"

// Account is a linked external bank account. It starts unverified; issuing
// a code and presenting it back moves it to verified.
type Account struct {
	ID                string
	UserID            string
	AccountNumber     string
	DebitCardLastFour string
	VerificationCode  string
	Verified          bool
	CreatedAt         time.Time
}
