package core

import (
	"context"
	"math/big"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"
	tokenIssuer "github.com/KaweewatN/decentralized-insurance-platform-sub000/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	SavePolicy(ctx context.Context, policy *repository.Policy) error
	UpdatePolicy(ctx context.Context, policy *repository.Policy) error
	GetPolicy(ctx context.Context, id string) (repository.Policy, error)
	GetPoliciesByUser(ctx context.Context, userID string) ([]repository.Policy, error)
	GetPoliciesByStatus(ctx context.Context, statuses ...repository.PolicyStatus) ([]repository.Policy, error)
	GetPoliciesByTxStatus(ctx context.Context, status repository.TxStatus) ([]repository.Policy, error)
	SaveClaim(ctx context.Context, claim *repository.Claim) error
	UpdateClaim(ctx context.Context, claim *repository.Claim) error
	GetClaimsByUser(ctx context.Context, userID string) ([]repository.Claim, error)
	GetClaimsByStatus(ctx context.Context, status repository.ClaimStatus) ([]repository.Claim, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchTransactions(ctx context.Context, hashes []string) ([]*ethereum.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ContractService . ContractService
type ContractService interface {
	PurchasePolicy(ctx context.Context, call ethereum.PurchaseCall) (string, error)
	Claim(ctx context.Context, call ethereum.ClaimCall) (string, error)
	CancelPolicy(ctx context.Context, call ethereum.CancelCall) (string, error)
	RenewPolicy(ctx context.Context, call ethereum.RenewCall) (string, error)
	GetPolicy(ctx context.Context, id common.Hash) (*ethereum.OnChainPolicy, error)
	VaultBalance(ctx context.Context) (*big.Int, error)
	VaultAddress() common.Address
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	SignPurchase(f signature.PurchaseFields) (signature.Authorization, error)
	SignClaim(f signature.ClaimFields) (signature.Authorization, error)
	SignCancel(f signature.CancelFields) (signature.Authorization, error)
	SignRenew(f signature.RenewFields) (signature.Authorization, error)
	Verify(digest common.Hash, sig []byte) (bool, error)
	ChainID() *big.Int
	Contract() common.Address
}

//counterfeiter:generate -o fake -fake-name RateService . RateService
type RateService interface {
	Current(ctx context.Context) (rate.Rate, error)
}
