package postgres

import (
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var jobTypeTable = Table[*portal.JobType]{
	Name:    "job_types",
	Columns: []string{"name"},
	Args: func(t *portal.JobType) []any {
		return []any{t.Name}
	},
	Scan: scanJobType,
}

func scanJobType(row pgx.Row) (*portal.JobType, error) {
	var (
		base recordColumns
		name string
	)

	if err := row.Scan(append(base.dest(), &name)...); err != nil {
		return nil, err
	}

	t := &portal.JobType{Name: name}
	base.apply(&t.Record)
	return t, nil
}

// NewJobTypeRepository は job_types テーブルに対する汎用リポジトリを生成します。
func NewJobTypeRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.JobType] {
	return NewRepository(pool, tx, clock, logger, jobTypeTable)
}
