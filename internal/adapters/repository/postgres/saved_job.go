package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var savedJobTable = Table[*portal.SavedJob]{
	Name:  "saved_jobs",
	Alias: "s",
	Joins: "LEFT JOIN job_posts jp ON jp.id = s.job_post_id",
	Columns: []string{
		"user_id", "job_post_id",
	},
	SelectColumns: []string{
		"s.user_id", "s.job_post_id",
		"jp.title",
	},
	Args: func(s *portal.SavedJob) []any {
		return []any{s.UserID, s.JobPostID}
	},
	Scan: scanSavedJob,
}

func scanSavedJob(row pgx.Row) (*portal.SavedJob, error) {
	var (
		base              recordColumns
		userID, jobPostID string
		jobTitle          sql.NullString
	)

	if err := row.Scan(append(base.dest(), &userID, &jobPostID, &jobTitle)...); err != nil {
		return nil, err
	}

	s := &portal.SavedJob{
		UserID:    userID,
		JobPostID: jobPostID,
		JobTitle:  stringPtr(jobTitle),
	}
	base.apply(&s.Record)
	return s, nil
}

// NewSavedJobRepository は saved_jobs テーブルに対する汎用リポジトリを生成します。
func NewSavedJobRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.SavedJob] {
	return NewRepository(pool, tx, clock, logger, savedJobTable)
}
