package repository_test

import (
	"context"
	"errors"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/db"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("InsuranceRepository", func() {
	var (
		repo        *repository.InsuranceRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewInsuranceRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx)
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Policy{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Claim{}))

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				users, ok := records.(*[]repository.User)
				Expect(ok).To(BeTrue())
				Expect(*users).NotTo(BeEmpty())
				for _, u := range *users {
					Expect(u.WalletAddress).To(HavePrefix("0x"))
					Expect(uuid.Validate(u.ID)).To(Succeed())
				}
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("seeding data fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("SavePolicy and UpdatePolicy", func() {
		var policy *repository.Policy

		BeforeEach(func() {
			policy = &repository.Policy{
				ID:         "0xabc",
				UserID:     uuid.NewString(),
				Product:    "health",
				PremiumTHB: decimal.NewFromInt(11000),
				Status:     repository.PolicyPending,
			}
		})

		It("creates new policies", func() {
			Expect(repo.SavePolicy(ctx, policy)).To(Succeed())
			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
			_, arg := fakeStorage.CreateArgsForCall(0)
			Expect(arg).To(BeIdenticalTo(policy))
		})

		It("saves updated policies", func() {
			Expect(repo.UpdatePolicy(ctx, policy)).To(Succeed())
			Expect(fakeStorage.SaveCallCount()).To(Equal(1))
			_, arg := fakeStorage.SaveArgsForCall(0)
			Expect(arg).To(BeIdenticalTo(policy))
		})

		It("wraps storage errors", func() {
			fakeStorage.CreateReturns(fakeErr)
			fakeStorage.SaveReturns(fakeErr)

			Expect(repo.SavePolicy(ctx, policy)).To(MatchError("save policy: fake error"))
			Expect(repo.UpdatePolicy(ctx, policy)).To(MatchError("update policy: fake error"))
		})
	})

	Describe("GetPolicy", func() {
		var (
			policy repository.Policy
			err    error
		)

		JustBeforeEach(func() {
			policy, err = repo.GetPolicy(ctx, "0xabc")
		})

		When("the policy exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					p := dest.(*repository.Policy)
					*p = repository.Policy{ID: "0xabc", Status: repository.PolicyActive}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(policy.Status).To(Equal(repository.PolicyActive))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal("0xabc"))
			})
		})

		When("the policy does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return policy not found", func() {
				Expect(err).To(MatchError(repository.ErrPolicyNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetPoliciesByUser", func() {
		var (
			userID   string
			policies []repository.Policy
			err      error
			now      time.Time
		)

		BeforeEach(func() {
			userID = uuid.NewString()
			now = time.Now()
		})

		JustBeforeEach(func() {
			policies, err = repo.GetPoliciesByUser(ctx, userID)
		})

		When("user has policies", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					ps := dest.(*[]repository.Policy)
					*ps = []repository.Policy{
						{ID: "0x1", CreatedAt: now.Add(-time.Hour)},
						{ID: "0x2", CreatedAt: now},
					}
					return nil
				}
			})

			It("should return them newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(policies).To(HaveLen(2))
				Expect(policies[0].ID).To(Equal("0x2"))
				Expect(policies[1].ID).To(Equal("0x1"))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("user_id"))
				Expect(val).To(Equal(userID))
			})
		})

		When("user has no policies", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(policies).NotTo(BeNil())
				Expect(policies).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetPoliciesByStatus", func() {
		It("queries every requested status", func() {
			_, err := repo.GetPoliciesByStatus(ctx, repository.PolicyActive, repository.PolicyPending)
			Expect(err).NotTo(HaveOccurred())

			_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(col).To(Equal("status"))
			Expect(val).To(Equal([]repository.PolicyStatus{repository.PolicyActive, repository.PolicyPending}))
		})
	})

	Describe("GetPoliciesByTxStatus", func() {
		It("queries by tx status", func() {
			_, err := repo.GetPoliciesByTxStatus(ctx, repository.TxPending)
			Expect(err).NotTo(HaveOccurred())

			_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(col).To(Equal("tx_status"))
			Expect(val).To(Equal(repository.TxPending))
		})
	})

	Describe("claims", func() {
		var claim *repository.Claim

		BeforeEach(func() {
			claim = &repository.Claim{
				ID:        uuid.NewString(),
				PolicyID:  "0xabc",
				AmountTHB: decimal.NewFromInt(5000),
				Status:    repository.ClaimPending,
			}
		})

		It("creates and updates claims", func() {
			Expect(repo.SaveClaim(ctx, claim)).To(Succeed())
			Expect(repo.UpdateClaim(ctx, claim)).To(Succeed())
			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
			Expect(fakeStorage.SaveCallCount()).To(Equal(1))
		})

		It("wraps storage errors", func() {
			fakeStorage.CreateReturns(fakeErr)
			Expect(repo.SaveClaim(ctx, claim)).To(MatchError("save claim: fake error"))
		})

		DescribeTable("lookups",
			func(lookup func() ([]repository.Claim, error), column string, value any) {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					cs := dest.(*[]repository.Claim)
					*cs = []repository.Claim{*claim}
					return nil
				}

				claims, err := lookup()
				Expect(err).NotTo(HaveOccurred())
				Expect(claims).To(HaveLen(1))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal(column))
				Expect(val).To(Equal(value))
			},
			Entry("by user", func() ([]repository.Claim, error) { return repo.GetClaimsByUser(ctx, "user-1") }, "user_id", "user-1"),
			Entry("by policy", func() ([]repository.Claim, error) { return repo.GetClaimsByPolicy(ctx, "0xabc") }, "policy_id", "0xabc"),
			Entry("by status", func() ([]repository.Claim, error) { return repo.GetClaimsByStatus(ctx, repository.ClaimPending) }, "status", repository.ClaimPending),
		)
	})

	Describe("users", func() {
		var testUser repository.User

		BeforeEach(func() {
			testUser = repository.User{
				ID:            uuid.NewString(),
				Username:      "alice",
				PasswordHash:  "hashed_password",
				WalletAddress: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			}
			fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
				user := dest.(*repository.User)
				*user = testUser
				return nil
			}
		})

		It("finds a user by username", func() {
			user, err := repo.GetUserFromDB(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(Equal(testUser))

			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("username"))
			Expect(val).To(Equal("alice"))
		})

		It("finds a user by id", func() {
			user, err := repo.GetUserByID(ctx, testUser.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.WalletAddress).To(Equal(testUser.WalletAddress))

			_, col, _, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("id"))
		})

		It("maps a missing row to ErrUserNotFound", func() {
			fakeStorage.GetOneByStub = nil
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			_, err := repo.GetUserFromDB(ctx, "ghost")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})

		It("returns other errors", func() {
			fakeStorage.GetOneByStub = nil
			fakeStorage.GetOneByReturns(fakeErr)

			_, err := repo.GetUserByID(ctx, "x")
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
