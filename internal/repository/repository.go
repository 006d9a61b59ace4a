package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/db"
)

var (
	ErrUserNotFound   error = errors.New("user not found")
	ErrPolicyNotFound error = errors.New("policy not found")
)

type InsuranceRepository struct {
	db Storage
}

func NewInsuranceRepository(db Storage) *InsuranceRepository {
	return &InsuranceRepository{
		db: db,
	}
}

func (r *InsuranceRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&User{}, &Policy{}, &Claim{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := seedUsers()
	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *InsuranceRepository) SavePolicy(ctx context.Context, policy *Policy) error {
	if err := r.db.Create(ctx, policy); err != nil {
		return fmt.Errorf("save policy: %w", err)
	}
	return nil
}

func (r *InsuranceRepository) UpdatePolicy(ctx context.Context, policy *Policy) error {
	if err := r.db.Save(ctx, policy); err != nil {
		return fmt.Errorf("update policy: %w", err)
	}
	return nil
}

func (r *InsuranceRepository) GetPolicy(ctx context.Context, id string) (Policy, error) {
	var policy Policy

	err := r.db.GetOneBy(ctx, "id", id, &policy)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Policy{}, ErrPolicyNotFound
		}
		return Policy{}, fmt.Errorf("get policy by id: %w", err)
	}

	return policy, nil
}

func (r *InsuranceRepository) GetPoliciesByUser(ctx context.Context, userID string) ([]Policy, error) {
	return r.policiesBy(ctx, "user_id", userID)
}

func (r *InsuranceRepository) GetPoliciesByStatus(ctx context.Context, statuses ...PolicyStatus) ([]Policy, error) {
	return r.policiesBy(ctx, "status", statuses)
}

func (r *InsuranceRepository) GetPoliciesByTxStatus(ctx context.Context, status TxStatus) ([]Policy, error) {
	return r.policiesBy(ctx, "tx_status", status)
}

func (r *InsuranceRepository) policiesBy(ctx context.Context, column string, value any) ([]Policy, error) {
	policies := []Policy{}
	err := r.db.GetAllBy(ctx, column, value, &policies)
	if err != nil {
		return policies, fmt.Errorf("get policies by %s: %w", column, err)
	}

	slices.SortStableFunc(policies, func(a, b Policy) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return policies, nil
}

func (r *InsuranceRepository) SaveClaim(ctx context.Context, claim *Claim) error {
	if err := r.db.Create(ctx, claim); err != nil {
		return fmt.Errorf("save claim: %w", err)
	}
	return nil
}

func (r *InsuranceRepository) UpdateClaim(ctx context.Context, claim *Claim) error {
	if err := r.db.Save(ctx, claim); err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	return nil
}

func (r *InsuranceRepository) GetClaimsByUser(ctx context.Context, userID string) ([]Claim, error) {
	return r.claimsBy(ctx, "user_id", userID)
}

func (r *InsuranceRepository) GetClaimsByPolicy(ctx context.Context, policyID string) ([]Claim, error) {
	return r.claimsBy(ctx, "policy_id", policyID)
}

func (r *InsuranceRepository) GetClaimsByStatus(ctx context.Context, status ClaimStatus) ([]Claim, error) {
	return r.claimsBy(ctx, "status", status)
}

func (r *InsuranceRepository) claimsBy(ctx context.Context, column string, value any) ([]Claim, error) {
	claims := []Claim{}
	err := r.db.GetAllBy(ctx, column, value, &claims)
	if err != nil {
		return claims, fmt.Errorf("get claims by %s: %w", column, err)
	}

	slices.SortStableFunc(claims, func(a, b Claim) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return claims, nil
}

func (r *InsuranceRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	return r.userBy(ctx, "username", username)
}

func (r *InsuranceRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.userBy(ctx, "id", id)
}

func (r *InsuranceRepository) userBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}
