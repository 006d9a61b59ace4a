package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type PolicyStatus string

const (
	PolicyPending   PolicyStatus = "pending"
	PolicyActive    PolicyStatus = "active"
	PolicyCancelled PolicyStatus = "cancelled"
	PolicyClaimed   PolicyStatus = "claimed"
	PolicyExpired   PolicyStatus = "expired"
	PolicyFailed    PolicyStatus = "failed"
)

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimFailed   ClaimStatus = "failed"
)

// TxStatus tracks the last transaction relayed for a record.
type TxStatus string

const (
	TxNone      TxStatus = ""
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

type Action string

const (
	ActionPurchase Action = "purchase"
	ActionClaim    Action = "claim"
	ActionCancel   Action = "cancel"
	ActionRenew    Action = "renew"
)

// Policy mirrors the on-chain policy record. The contract stays authoritative.
type Policy struct {
	ID                    string          `gorm:"primaryKey;size:66"` // bytes32 hex
	UserID                string          `gorm:"size:36;index;not null"`
	Holder                string          `gorm:"size:42;not null"`
	Product               string          `gorm:"size:16;not null"`
	Age                   int             `gorm:"not null"`
	Gender                string          `gorm:"size:8"`
	Smoker                bool            `gorm:"not null;default:false"`
	PreExistingConditions bool            `gorm:"not null;default:false"`
	TermYears             int             `gorm:"not null"`
	PremiumTHB            decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	SumAssuredTHB         decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	PremiumWei            string          `gorm:"size:78;not null"`
	SumAssuredWei         string          `gorm:"size:78;not null"`
	ExchangeRate          decimal.Decimal `gorm:"type:numeric(24,8);not null"`
	StartAt               time.Time       `gorm:"not null"`
	PeriodStartAt         time.Time
	ExpiresAt             time.Time       `gorm:"not null;index"`
	Status                PolicyStatus    `gorm:"size:16;not null;index"`
	IsActive              bool            `gorm:"not null;default:false"`
	IsClaimed             bool            `gorm:"not null;default:false"`
	TxHash                string          `gorm:"size:66"`
	TxStatus              TxStatus        `gorm:"size:16;index"`
	LastAction            Action          `gorm:"size:16"`
	PreviousStatus        PolicyStatus    `gorm:"size:16"`
	PreviousExpiresAt     *time.Time
	PreviousPeriodStartAt *time.Time
	PreviousPremiumTHB    decimal.Decimal `gorm:"type:numeric(20,2)"`
	PreviousPremiumWei    string          `gorm:"size:78"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CurrentPeriodStart returns when the coverage period paid for by the premium fields began.
func (p Policy) CurrentPeriodStart() time.Time {
	if p.PeriodStartAt.IsZero() {
		return p.StartAt
	}
	return p.PeriodStartAt
}

type Claim struct {
	ID           string          `gorm:"primaryKey;size:36"`
	PolicyID     string          `gorm:"size:66;not null;index"`
	UserID       string          `gorm:"size:36;not null;index"`
	AmountTHB    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	AmountWei    string          `gorm:"size:78;not null"`
	ExchangeRate decimal.Decimal `gorm:"type:numeric(24,8);not null"`
	Reason       string          `gorm:"type:text"`
	Status       ClaimStatus     `gorm:"size:16;not null;index"`
	TxHash       string          `gorm:"size:66"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	Username      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	WalletAddress string `gorm:"size:42"`
}
