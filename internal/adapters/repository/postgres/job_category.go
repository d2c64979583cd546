package postgres

import (
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var jobCategoryTable = Table[*portal.JobCategory]{
	Name:    "job_categories",
	Columns: []string{"name"},
	Args: func(c *portal.JobCategory) []any {
		return []any{c.Name}
	},
	Scan: scanJobCategory,
}

func scanJobCategory(row pgx.Row) (*portal.JobCategory, error) {
	var (
		base recordColumns
		name string
	)

	if err := row.Scan(append(base.dest(), &name)...); err != nil {
		return nil, err
	}

	c := &portal.JobCategory{Name: name}
	base.apply(&c.Record)
	return c, nil
}

// NewJobCategoryRepository は job_categories テーブルに対する汎用リポジトリを生成します。
func NewJobCategoryRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.JobCategory] {
	return NewRepository(pool, tx, clock, logger, jobCategoryTable)
}
