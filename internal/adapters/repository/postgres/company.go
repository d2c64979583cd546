package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var companyTable = Table[*portal.Company]{
	Name:  "companies",
	Alias: "c",
	Joins: "LEFT JOIN users u ON u.id = c.owner_user_id",
	Columns: []string{
		"name", "website", "country", "city", "logo_url", "description", "owner_user_id", "status",
	},
	SelectColumns: []string{
		"c.name", "c.website", "c.country", "c.city", "c.logo_url", "c.description", "c.owner_user_id", "c.status",
		"u.user_name",
	},
	Args: func(c *portal.Company) []any {
		return []any{
			c.Name,
			nullableString(c.Website),
			nullableString(c.Country),
			nullableString(c.City),
			nullableString(c.LogoURL),
			nullableString(c.Description),
			c.OwnerUserID,
			string(c.Status),
		}
	},
	Scan: scanCompany,
}

func scanCompany(row pgx.Row) (*portal.Company, error) {
	var (
		base                                         recordColumns
		name, ownerUserID, status                    string
		website, country, city, logoURL, description sql.NullString
		ownerUserName                                sql.NullString
	)

	dest := append(base.dest(),
		&name, &website, &country, &city, &logoURL, &description, &ownerUserID, &status, &ownerUserName)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	c := &portal.Company{
		Name:          name,
		Website:       stringPtr(website),
		Country:       stringPtr(country),
		City:          stringPtr(city),
		LogoURL:       stringPtr(logoURL),
		Description:   stringPtr(description),
		OwnerUserID:   ownerUserID,
		Status:        portal.CompanyStatus(status),
		OwnerUserName: stringPtr(ownerUserName),
	}
	base.apply(&c.Record)
	return c, nil
}

// NewCompanyRepository は companies テーブルに対する汎用リポジトリを生成します。
func NewCompanyRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.Company] {
	return NewRepository(pool, tx, clock, logger, companyTable)
}
