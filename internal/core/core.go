// Package core implements the insurance relay: quoting, admin-signed contract calls
// and the local mirror of on-chain policies and claims.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	tokenIssuer "github.com/KaweewatN/decentralized-insurance-platform-sub000/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var TimeNow = time.Now

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrPolicyNotFound    error = errors.New("policy not found")
	ErrForbidden         error = errors.New("policy belongs to another user")
	ErrNoWallet          error = errors.New("no wallet address registered for user")
	ErrTxInFlight        error = errors.New("a transaction for this policy is still pending")
	ErrInvalidInput      error = errors.New("invalid input")
)

const tokenLifetimeHours = 24

// Insurance drives the policy lifecycle against the contract and keeps the mirror in step.
type Insurance struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	chain     EthereumService
	contract  ContractService
	signer    Signer
	rates     RateService

	authorizationTTL time.Duration
}

func NewInsurance(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	chain EthereumService,
	contract ContractService,
	signer Signer,
	rates RateService,
) *Insurance {
	return &Insurance{
		logs:             logger,
		repo:             repo,
		jwtIssuer:        jwt,
		chain:            chain,
		contract:         contract,
		signer:           signer,
		rates:            rates,
		authorizationTTL: 24 * time.Hour,
	}
}

// Authenticate checks the credentials and returns a signed JWT for the user.
func (s *Insurance) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Wallet:     user.WalletAddress,
		Expiration: tokenLifetimeHours,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	s.logs.Infow("user authenticated", "user_id", user.ID)
	return signed, nil
}

// ownedPolicy loads a policy and checks it belongs to userID.
func (s *Insurance) ownedPolicy(ctx context.Context, userID, policyID string) (repository.Policy, error) {
	policy, err := s.repo.GetPolicy(ctx, policyID)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return repository.Policy{}, ErrPolicyNotFound
		}
		return repository.Policy{}, fmt.Errorf("get policy: %w", err)
	}
	if policy.UserID != userID {
		return repository.Policy{}, ErrForbidden
	}
	return policy, nil
}

// writablePolicy is ownedPolicy for operations that relay a new transaction.
func (s *Insurance) writablePolicy(ctx context.Context, userID, policyID string) (repository.Policy, error) {
	policy, err := s.ownedPolicy(ctx, userID, policyID)
	if err != nil {
		return repository.Policy{}, err
	}
	if policy.TxStatus == repository.TxPending {
		return repository.Policy{}, fmt.Errorf("%w: %s", ErrTxInFlight, policy.TxHash)
	}
	return policy, nil
}
