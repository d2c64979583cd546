package postgres

import (
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

var cvFileTable = Table[*portal.CVFile]{
	Name: "cv_files",
	Columns: []string{
		"job_seeker_id", "file_name", "content_type", "blob_url", "file_size_bytes", "is_primary",
	},
	Args: func(f *portal.CVFile) []any {
		return []any{
			f.JobSeekerID,
			f.FileName,
			f.ContentType,
			f.BlobURL,
			f.FileSizeBytes,
			f.IsPrimary,
		}
	},
	Scan: scanCVFile,
}

func scanCVFile(row pgx.Row) (*portal.CVFile, error) {
	var (
		base                                     recordColumns
		jobSeekerID, fileName, contentType, blob string
		fileSizeBytes                            int
		isPrimary                                bool
	)

	dest := append(base.dest(),
		&jobSeekerID, &fileName, &contentType, &blob, &fileSizeBytes, &isPrimary)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	f := &portal.CVFile{
		JobSeekerID:   jobSeekerID,
		FileName:      fileName,
		ContentType:   contentType,
		BlobURL:       blob,
		FileSizeBytes: fileSizeBytes,
		IsPrimary:     isPrimary,
	}
	base.apply(&f.Record)
	return f, nil
}

// NewCVFileRepository は cv_files テーブルに対する汎用リポジトリを生成します。
func NewCVFileRepository(pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger) *Repository[*portal.CVFile] {
	return NewRepository(pool, tx, clock, logger, cvFileTable)
}
