package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// JobType は雇用形態です。
type JobType struct {
	record.Record
	Name string
}

// JobTypeDTO は JobType のサービス境界表現です。
type JobTypeDTO struct {
	ID        string
	Name      string
	State     record.State
	CreatedAt time.Time
	UpdatedAt time.Time
}
