package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var applicationTable = Table[*portal.Application]{
	Name:  "applications",
	Alias: "a",
	Joins: "LEFT JOIN job_posts jp ON jp.id = a.job_post_id" +
		" LEFT JOIN companies c ON c.id = jp.company_id",
	Columns: []string{
		"job_post_id", "job_seeker_id", "applicant_user_id", "cover_letter",
		"cv_file_id", "cv_file_path", "status",
	},
	SelectColumns: []string{
		"a.job_post_id", "a.job_seeker_id", "a.applicant_user_id", "a.cover_letter",
		"a.cv_file_id", "a.cv_file_path", "a.status",
		"jp.title", "c.name",
	},
	Args: func(a *portal.Application) []any {
		return []any{
			a.JobPostID,
			a.JobSeekerID,
			a.ApplicantUserID,
			nullableString(a.CoverLetter),
			nullableString(a.CVFileID),
			nullableString(a.CVFilePath),
			string(a.Status),
		}
	},
	Scan: scanApplication,
}

func scanApplication(row pgx.Row) (*portal.Application, error) {
	var (
		base                                recordColumns
		jobPostID, jobSeekerID, applicantID string
		status                              string
		coverLetter, cvFileID, cvFilePath   sql.NullString
		jobTitle, companyName               sql.NullString
	)

	dest := append(base.dest(),
		&jobPostID, &jobSeekerID, &applicantID, &coverLetter,
		&cvFileID, &cvFilePath, &status,
		&jobTitle, &companyName)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	a := &portal.Application{
		JobPostID:       jobPostID,
		JobSeekerID:     jobSeekerID,
		ApplicantUserID: applicantID,
		CoverLetter:     stringPtr(coverLetter),
		CVFileID:        stringPtr(cvFileID),
		CVFilePath:      stringPtr(cvFilePath),
		Status:          portal.ApplicationStatus(status),
		JobTitle:        stringPtr(jobTitle),
		CompanyName:     stringPtr(companyName),
	}
	base.apply(&a.Record)
	return a, nil
}

// NewApplicationRepository は applications テーブルに対する汎用リポジトリを生成します。
func NewApplicationRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.Application] {
	return NewRepository(pool, tx, clock, logger, applicationTable)
}
