package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var employerProfileTable = Table[*portal.EmployerProfile]{
	Name:  "employer_profiles",
	Alias: "p",
	Joins: "LEFT JOIN companies c ON c.id = p.company_id",
	Columns: []string{
		"user_id", "company_id", "job_title", "phone", "full_name",
	},
	SelectColumns: []string{
		"p.user_id", "p.company_id", "p.job_title", "p.phone", "p.full_name",
		"c.name",
	},
	Args: func(p *portal.EmployerProfile) []any {
		return []any{
			p.UserID,
			nullableString(p.CompanyID),
			nullableString(p.JobTitle),
			nullableString(p.Phone),
			nullableString(p.FullName),
		}
	},
	Scan: scanEmployerProfile,
}

func scanEmployerProfile(row pgx.Row) (*portal.EmployerProfile, error) {
	var (
		base                                            recordColumns
		userID                                          string
		companyID, jobTitle, phone, fullName, companyName sql.NullString
	)

	dest := append(base.dest(), &userID, &companyID, &jobTitle, &phone, &fullName, &companyName)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	p := &portal.EmployerProfile{
		UserID:      userID,
		CompanyID:   stringPtr(companyID),
		JobTitle:    stringPtr(jobTitle),
		Phone:       stringPtr(phone),
		FullName:    stringPtr(fullName),
		CompanyName: stringPtr(companyName),
	}
	base.apply(&p.Record)
	return p, nil
}

// NewEmployerProfileRepository は employer_profiles テーブルに対する汎用リポジトリを生成します。
func NewEmployerProfileRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.EmployerProfile] {
	return NewRepository(pool, tx, clock, logger, employerProfileTable)
}
