package domain

// Account roles
const (
	RoleUser  = "user"  // Default role at registration
	RoleAgent = "agent" // Agents receive cash-outs and earn the fee
	RoleAdmin = "admin" // Admins approve accounts
)

// Account statuses
const (
	StatusPending  = "pending"  // Default status at registration
	StatusApproved = "approved" // Set by admin approval
)

// Account Model
type Account struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`              // Primary key (UUID)
	Email    string  `gorm:"uniqueIndex;size:191;not null" json:"email"` // Unique email, secondary lookup key
	Name     string  `json:"name"`                                      // Display name
	Phone    string  `json:"phone"`                                     // Phone number
	Password string  `gorm:"not null" json:"-"`                         // Hashed secret, never serialized
	Role     string  `gorm:"default:user" json:"role"`                  // Role: user, agent or admin
	Status   string  `gorm:"default:pending" json:"status"`             // Status: pending or approved
	Balance  float64 `gorm:"not null;default:0" json:"balance"`         // Balance in minor currency units
}
