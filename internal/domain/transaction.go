package domain

// Transaction types
const (
	TypeTransfer = "transfer" // Peer to peer transfer
	TypeCashOut  = "cashOut"  // Cash-out through an agent
)

// StatusCompleted marks a committed transaction record.
const StatusCompleted = "completed"

// Transaction Model (write-once history record)
type Transaction struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id"`           // Primary key (UUID)
	SenderEmail    string  `gorm:"index" json:"sender_email"`              // Originating account email
	RecipientEmail string  `gorm:"index" json:"recipient_email"`           // Receiving account email
	Amount         float64 `json:"amount"`                                 // Principal amount
	Fee            float64 `json:"fee"`                                    // Fee charged for the movement
	Type           string  `json:"type"`                                   // Transaction type: transfer, cashOut
	Status         string  `json:"status"`                                 // Outcome status
	CreatedAt      int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
