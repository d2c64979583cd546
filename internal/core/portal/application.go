package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// ApplicationStatus は応募の選考状態を表します。
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

// Application は求人への応募エンティティです。応募時点の CV への参照を
// スナップショットとして保持します。
type Application struct {
	record.Record
	JobPostID       string
	JobSeekerID     string
	ApplicantUserID string
	CoverLetter     *string
	CVFileID        *string
	CVFilePath      *string
	Status          ApplicationStatus

	// 以下は取得時に結合で埋める表示専用フィールドです。保存されません。
	JobTitle    *string
	CompanyName *string
}

// ApplicationDTO は Application のサービス境界表現です。
type ApplicationDTO struct {
	ID              string
	JobPostID       string
	JobSeekerID     string
	ApplicantUserID string
	CoverLetter     *string
	CVFileID        *string
	CVFilePath      *string
	Status          ApplicationStatus
	JobTitle        *string
	CompanyName     *string
	State           record.State
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
