package core

import (
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type QuoteRequest struct {
	Product               string
	Age                   int
	Gender                string
	Smoker                bool
	PreExistingConditions bool
	SumAssured            decimal.Decimal
	TermYears             int
}

type QuoteResult struct {
	Product       string          `json:"product"`
	PremiumTHB    decimal.Decimal `json:"premiumThb"`
	PremiumETH    decimal.Decimal `json:"premiumEth"`
	PremiumWei    string          `json:"premiumWei"`
	SumAssuredTHB decimal.Decimal `json:"sumAssuredThb"`
	SumAssuredWei string          `json:"sumAssuredWei"`
	TermYears     int             `json:"termYears"`
	CoverageDays  int             `json:"coverageDays"`
	Rate          rate.Rate       `json:"rate"`
}

type PurchaseRequest struct {
	QuoteRequest
	// Holder overrides the wallet registered on the account.
	Holder string
}

// AuthorizationBundle is everything a holder needs to submit purchasePolicy themselves.
type AuthorizationBundle struct {
	PolicyID      string      `json:"policyId"`
	Action        string      `json:"action"`
	Holder        string      `json:"holder"`
	Contract      string      `json:"contract"`
	ChainID       string      `json:"chainId"`
	PremiumWei    string      `json:"premiumWei"`
	SumAssuredWei string      `json:"sumAssuredWei"`
	Expiry        int64       `json:"expiry"`
	Nonce         string      `json:"nonce"`
	Digest        string      `json:"digest"`
	Signature     string      `json:"signature"`
	Signer        string      `json:"signer"`
	Quote         QuoteResult `json:"quote"`
}

type PolicyRecord struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId"`
	Holder                string          `json:"holder"`
	Product               string          `json:"product"`
	Age                   int             `json:"age"`
	Gender                string          `json:"gender,omitempty"`
	Smoker                bool            `json:"smoker"`
	PreExistingConditions bool            `json:"preExistingConditions"`
	TermYears             int             `json:"termYears"`
	PremiumTHB            decimal.Decimal `json:"premiumThb"`
	SumAssuredTHB         decimal.Decimal `json:"sumAssuredThb"`
	PremiumWei            string          `json:"premiumWei"`
	SumAssuredWei         string          `json:"sumAssuredWei"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
	StartAt               time.Time       `json:"startAt"`
	PeriodStartAt         time.Time       `json:"periodStartAt"`
	ExpiresAt             time.Time       `json:"expiresAt"`
	Status                string          `json:"status"`
	IsActive              bool            `json:"isActive"`
	IsClaimed             bool            `json:"isClaimed"`
	TxHash                string          `json:"txHash,omitempty"`
	TxStatus              string          `json:"txStatus,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}

type ClaimRecord struct {
	ID           string          `json:"id"`
	PolicyID     string          `json:"policyId"`
	AmountTHB    decimal.Decimal `json:"amountThb"`
	AmountWei    string          `json:"amountWei"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Reason       string          `json:"reason,omitempty"`
	Status       string          `json:"status"`
	TxHash       string          `json:"txHash,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type RefundQuote struct {
	PolicyID   string          `json:"policyId"`
	PremiumTHB decimal.Decimal `json:"premiumThb"`
	RefundTHB  decimal.Decimal `json:"refundThb"`
	RefundWei  string          `json:"refundWei"`
}

type CancelResult struct {
	Policy PolicyRecord `json:"policy"`
	Refund RefundQuote  `json:"refund"`
	TxHash string       `json:"txHash"`
}

type ClaimRequest struct {
	AmountTHB decimal.Decimal
	Reason    string
}

type ClaimResult struct {
	Claim  ClaimRecord  `json:"claim"`
	Policy PolicyRecord `json:"policy"`
}

type RenewResult struct {
	Policy    PolicyRecord `json:"policy"`
	Quote     QuoteResult  `json:"quote"`
	NewExpiry time.Time    `json:"newExpiry"`
	TxHash    string       `json:"txHash"`
}

type VaultInfo struct {
	Address    string          `json:"address"`
	BalanceWei string          `json:"balanceWei"`
	BalanceETH decimal.Decimal `json:"balanceEth"`
	BalanceTHB decimal.Decimal `json:"balanceThb"`
	Rate       rate.Rate       `json:"rate"`
}

type SyncReport struct {
	Confirmed int `json:"confirmed"`
	Reverted  int `json:"reverted"`
	Expired   int `json:"expired"`
	Pending   int `json:"pending"`
}

func toPolicyRecord(p repository.Policy) PolicyRecord {
	return PolicyRecord{
		ID:                    p.ID,
		UserID:                p.UserID,
		Holder:                p.Holder,
		Product:               p.Product,
		Age:                   p.Age,
		Gender:                p.Gender,
		Smoker:                p.Smoker,
		PreExistingConditions: p.PreExistingConditions,
		TermYears:             p.TermYears,
		PremiumTHB:            p.PremiumTHB,
		SumAssuredTHB:         p.SumAssuredTHB,
		PremiumWei:            p.PremiumWei,
		SumAssuredWei:         p.SumAssuredWei,
		ExchangeRate:          p.ExchangeRate,
		StartAt:               p.StartAt,
		PeriodStartAt:         p.CurrentPeriodStart(),
		ExpiresAt:             p.ExpiresAt,
		Status:                string(p.Status),
		IsActive:              p.IsActive,
		IsClaimed:             p.IsClaimed,
		TxHash:                p.TxHash,
		TxStatus:              string(p.TxStatus),
		CreatedAt:             p.CreatedAt,
	}
}

func toClaimRecord(c repository.Claim) ClaimRecord {
	return ClaimRecord{
		ID:           c.ID,
		PolicyID:     c.PolicyID,
		AmountTHB:    c.AmountTHB,
		AmountWei:    c.AmountWei,
		ExchangeRate: c.ExchangeRate,
		Reason:       c.Reason,
		Status:       string(c.Status),
		TxHash:       c.TxHash,
		CreatedAt:    c.CreatedAt,
	}
}
