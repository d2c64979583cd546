package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// CVFile はアップロード済み履歴書ファイルのメタデータです。
// ファイル本体は外部ストレージにあり、ここでは参照 URL のみを保持します。
type CVFile struct {
	record.Record
	JobSeekerID   string
	FileName      string
	ContentType   string
	BlobURL       string
	FileSizeBytes int
	IsPrimary     bool
}

// CVFileDTO は CVFile のサービス境界表現です。
type CVFileDTO struct {
	ID            string
	JobSeekerID   string
	FileName      string
	ContentType   string
	BlobURL       string
	FileSizeBytes int
	IsPrimary     bool
	State         record.State
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
