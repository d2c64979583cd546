package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// JobCategory は求人の分類です。
type JobCategory struct {
	record.Record
	Name string
}

// JobCategoryDTO は JobCategory のサービス境界表現です。
type JobCategoryDTO struct {
	ID        string
	Name      string
	State     record.State
	CreatedAt time.Time
	UpdatedAt time.Time
}
