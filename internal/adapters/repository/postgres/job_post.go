package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var jobPostTable = Table[*portal.JobPost]{
	Name:  "job_posts",
	Alias: "j",
	Joins: "LEFT JOIN companies c ON c.id = j.company_id" +
		" LEFT JOIN job_categories jc ON jc.id = j.job_category_id" +
		" LEFT JOIN job_types jt ON jt.id = j.job_type_id",
	Columns: []string{
		"company_id", "job_category_id", "job_type_id", "title", "description", "requirements",
		"country", "city", "min_experience_years", "max_experience_years",
		"min_salary", "max_salary", "currency", "expires_at",
	},
	SelectColumns: []string{
		"j.company_id", "j.job_category_id", "j.job_type_id", "j.title", "j.description", "j.requirements",
		"j.country", "j.city", "j.min_experience_years", "j.max_experience_years",
		"j.min_salary", "j.max_salary", "j.currency", "j.expires_at",
		"c.name", "jc.name", "jt.name",
	},
	Args: func(j *portal.JobPost) []any {
		return []any{
			j.CompanyID,
			j.JobCategoryID,
			nullableString(j.JobTypeID),
			j.Title,
			j.Description,
			nullableString(j.Requirements),
			nullableString(j.Country),
			nullableString(j.City),
			nullableInt16(j.MinExperienceYears),
			nullableInt16(j.MaxExperienceYears),
			nullableFloat(j.MinSalary),
			nullableFloat(j.MaxSalary),
			nullableString(j.Currency),
			nullableTime(j.ExpiresAt),
		}
	},
	Scan: scanJobPost,
}

func scanJobPost(row pgx.Row) (*portal.JobPost, error) {
	var (
		base                                recordColumns
		companyID, jobCategoryID            string
		title, description                  string
		jobTypeID, requirements             sql.NullString
		country, city, currency             sql.NullString
		minExperience, maxExperience        sql.NullInt16
		minSalary, maxSalary                sql.NullFloat64
		expiresAt                           sql.NullTime
		companyName, categoryName, typeName sql.NullString
	)

	dest := append(base.dest(),
		&companyID, &jobCategoryID, &jobTypeID, &title, &description, &requirements,
		&country, &city, &minExperience, &maxExperience,
		&minSalary, &maxSalary, &currency, &expiresAt,
		&companyName, &categoryName, &typeName)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	j := &portal.JobPost{
		CompanyID:          companyID,
		JobCategoryID:      jobCategoryID,
		JobTypeID:          stringPtr(jobTypeID),
		Title:              title,
		Description:        description,
		Requirements:       stringPtr(requirements),
		Country:            stringPtr(country),
		City:               stringPtr(city),
		MinExperienceYears: int16Ptr(minExperience),
		MaxExperienceYears: int16Ptr(maxExperience),
		MinSalary:          floatPtr(minSalary),
		MaxSalary:          floatPtr(maxSalary),
		Currency:           stringPtr(currency),
		ExpiresAt:          timePtr(expiresAt),
		CompanyName:        stringPtr(companyName),
		JobCategoryName:    stringPtr(categoryName),
		JobTypeName:        stringPtr(typeName),
	}
	base.apply(&j.Record)
	return j, nil
}

// NewJobPostRepository は job_posts テーブルに対する汎用リポジトリを生成します。
func NewJobPostRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.JobPost] {
	return NewRepository(pool, tx, clock, logger, jobPostTable)
}
