package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// JobPost は会社が公開する求人エンティティです。
type JobPost struct {
	record.Record
	CompanyID          string
	JobCategoryID      string
	JobTypeID          *string
	Title              string
	Description        string
	Requirements       *string
	Country            *string
	City               *string
	MinExperienceYears *int16
	MaxExperienceYears *int16
	MinSalary          *float64
	MaxSalary          *float64
	Currency           *string
	ExpiresAt          *time.Time

	// 以下は取得時に結合で埋める表示専用フィールドです。保存されません。
	CompanyName     *string
	JobCategoryName *string
	JobTypeName     *string
}

// JobPostDTO は JobPost のサービス境界表現です。関連エンティティの名称は
// 変換時に平坦化された読み取り専用フィールドで、重複保存はされません。
type JobPostDTO struct {
	ID                 string
	CompanyID          string
	JobCategoryID      string
	JobTypeID          *string
	Title              string
	Description        string
	Requirements       *string
	Country            *string
	City               *string
	MinExperienceYears *int16
	MaxExperienceYears *int16
	MinSalary          *float64
	MaxSalary          *float64
	Currency           *string
	ExpiresAt          *time.Time
	CompanyName        *string
	JobCategoryName    *string
	JobTypeName        *string
	State              record.State
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
