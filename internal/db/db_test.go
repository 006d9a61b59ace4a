package db_test

import (
	"context"
	"database/sql"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Record struct {
	ID     uint `gorm:"primaryKey"`
	Status string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"records\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			Expect(testDB.MigrateTable(&Record{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Seed", func() {
		var records []Record

		BeforeEach(func() {
			records = []Record{
				{ID: 1, Status: "active"},
				{ID: 2, Status: "pending"},
			}
		})

		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "records"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "records" \("status","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("active", 1, "pending", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
				mock.ExpectCommit()
			})

			It("should insert the records", func() {
				Expect(testDB.Seed(ctx, &records)).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already has rows", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "records"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should leave the table untouched", func() {
				Expect(testDB.Seed(ctx, &records)).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("records is not a pointer to a slice", func() {
			It("should return an error", func() {
				Expect(testDB.Seed(ctx, records)).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})
	})

	Describe("Create", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "records" \("status","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
				WithArgs("pending", 7).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
			mock.ExpectCommit()
		})

		It("should insert one record", func() {
			Expect(testDB.Create(ctx, &Record{ID: 7, Status: "pending"})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Save", func() {
		When("the update succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "records" SET "status"=\$1 WHERE "id" = \$2$`).
					WithArgs("active", 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should update every column", func() {
				Expect(testDB.Save(ctx, &Record{ID: 7, Status: "active"})).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "records"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Save(ctx, &Record{ID: 7, Status: "active"})
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err.Error()).To(ContainSubstring("save record"))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE status = \$1 ORDER BY "records"\."id" LIMIT \$2.*`).
					WithArgs("active", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
						AddRow(1, "active"))
			})

			It("should return the correct record", func() {
				var result Record
				err := testDB.GetOneBy(ctx, "status", "active", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Status).To(Equal("active"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE status = \$1 ORDER BY "records"\."id" LIMIT \$2.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Record
				err := testDB.GetOneBy(ctx, "status", "ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE status IN \(\$1,\$2\).*`).
					WithArgs("active", "pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
						AddRow(1, "active").
						AddRow(2, "pending"))
			})

			It("should return all matching records", func() {
				var results []Record
				err := testDB.GetAllBy(ctx, "status", []string{"active", "pending"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Status).To(Equal("active"))
				Expect(results[1].Status).To(Equal("pending"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a single value is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE user_id = \$1`).
					WithArgs("u-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
						AddRow(1, "active"))
			})

			It("should compare by equality", func() {
				var results []Record
				err := testDB.GetAllBy(ctx, "user_id", "u-1", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a one element slice is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE status IN \(\$1\)`).
					WithArgs("pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
						AddRow(1, "pending"))
			})

			It("should expand the list", func() {
				var results []Record
				err := testDB.GetAllBy(ctx, "status", []string{"pending"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE status.*`).
					WithArgs("invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Record
				err := testDB.GetAllBy(ctx, "status", "invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Ping", func() {
		It("should reach the database", func() {
			Expect(testDB.Ping(ctx)).To(Succeed())
		})
	})
})
