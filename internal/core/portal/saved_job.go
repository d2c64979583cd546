package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// SavedJob は求職者がブックマークした求人です。
type SavedJob struct {
	record.Record
	UserID    string
	JobPostID string

	// JobTitle は取得時に結合で埋める表示専用フィールドです。保存されません。
	JobTitle *string
}

// SavedJobDTO は SavedJob のサービス境界表現です。
type SavedJobDTO struct {
	ID        string
	UserID    string
	JobPostID string
	JobTitle  *string
	State     record.State
	CreatedAt time.Time
	UpdatedAt time.Time
}
