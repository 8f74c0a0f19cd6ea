package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Escrow statuses. Only "initiated" is ever written: the record is a
// write-once audit of an intended payment, not a funds-holding mechanism.
const (
	EscrowStatusInitiated = "initiated"
)

type PayerInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Escrow struct {
	ID            uuid.UUID `json:"id"`
	ListingID     uuid.UUID `json:"listingId"`
	Amount        float64   `json:"amount"`
	Payer         PayerInfo `json:"payerInfo"`
	PayeeAgentID  uuid.UUID `json:"payeeAgentId"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// NewTransactionID returns an identifier of the form
// ESC_<epoch-ms>_<random-suffix>. The suffix comes from crypto/rand so
// concurrent calls never collide even within the same millisecond.
func NewTransactionID(now time.Time) string {
	buf := make([]byte, 5)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("ESC_%d_%s", now.UnixMilli(), hex.EncodeToString(buf))
}
