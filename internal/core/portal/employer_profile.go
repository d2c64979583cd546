package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// EmployerProfile は雇用主ユーザーのプロフィールです。
// ユーザーにつき最大 1 件で、会社が未作成の間 CompanyID は nil のままです。
type EmployerProfile struct {
	record.Record
	UserID    string
	CompanyID *string
	JobTitle  *string
	Phone     *string
	FullName  *string

	// CompanyName は取得時に結合で埋める表示専用フィールドです。保存されません。
	CompanyName *string
}

// EmployerProfileDTO は EmployerProfile のサービス境界表現です。
type EmployerProfileDTO struct {
	ID          string
	UserID      string
	CompanyID   *string
	JobTitle    *string
	Phone       *string
	FullName    *string
	CompanyName *string
	State       record.State
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
