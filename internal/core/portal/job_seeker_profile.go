package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// JobSeekerProfile は求職者ユーザーのプロフィールです。ユーザーにつき最大 1 件です。
type JobSeekerProfile struct {
	record.Record
	UserID            string
	Headline          *string
	Summary           *string
	Country           *string
	City              *string
	YearsOfExperience *int16
	CVFilePath        *string
}

// JobSeekerProfileDTO は JobSeekerProfile のサービス境界表現です。
type JobSeekerProfileDTO struct {
	ID                string
	UserID            string
	Headline          *string
	Summary           *string
	Country           *string
	City              *string
	YearsOfExperience *int16
	CVFilePath        *string
	State             record.State
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
