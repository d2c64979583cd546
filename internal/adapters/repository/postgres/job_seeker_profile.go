package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var jobSeekerProfileTable = Table[*portal.JobSeekerProfile]{
	Name: "job_seeker_profiles",
	Columns: []string{
		"user_id", "headline", "summary", "country", "city", "years_of_experience", "cv_file_path",
	},
	Args: func(p *portal.JobSeekerProfile) []any {
		return []any{
			p.UserID,
			nullableString(p.Headline),
			nullableString(p.Summary),
			nullableString(p.Country),
			nullableString(p.City),
			nullableInt16(p.YearsOfExperience),
			nullableString(p.CVFilePath),
		}
	},
	Scan: scanJobSeekerProfile,
}

func scanJobSeekerProfile(row pgx.Row) (*portal.JobSeekerProfile, error) {
	var (
		base                                recordColumns
		userID                              string
		headline, summary, country, city    sql.NullString
		yearsOfExperience                   sql.NullInt16
		cvFilePath                          sql.NullString
	)

	dest := append(base.dest(),
		&userID, &headline, &summary, &country, &city, &yearsOfExperience, &cvFilePath)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	p := &portal.JobSeekerProfile{
		UserID:            userID,
		Headline:          stringPtr(headline),
		Summary:           stringPtr(summary),
		Country:           stringPtr(country),
		City:              stringPtr(city),
		YearsOfExperience: int16Ptr(yearsOfExperience),
		CVFilePath:        stringPtr(cvFilePath),
	}
	base.apply(&p.Record)
	return p, nil
}

// NewJobSeekerProfileRepository は job_seeker_profiles テーブルに対する汎用リポジトリを生成します。
func NewJobSeekerProfileRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.JobSeekerProfile] {
	return NewRepository(pool, tx, clock, logger, jobSeekerProfileTable)
}
