package portal

import (
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// CompanyStatus は会社の承認状態を表します。
type CompanyStatus string

const (
	// CompanyPending は管理者の承認待ち状態です。作成直後の既定値です。
	CompanyPending CompanyStatus = "pending"
	// CompanyApproved は管理者が承認した状態です。
	CompanyApproved CompanyStatus = "approved"
	// CompanyRejected は管理者が却下した状態です。
	CompanyRejected CompanyStatus = "rejected"
)

// IsValidCompanyStatus は承認状態の値が既知のものか判定します。
func IsValidCompanyStatus(status CompanyStatus) bool {
	switch status {
	case CompanyPending, CompanyApproved, CompanyRejected:
		return true
	default:
		return false
	}
}

// Company は雇用主が登録する会社エンティティです。
// Pending で作成され、承認・却下の遷移は管理者による通常の
// Update / ChangeState 操作として保存されます。
type Company struct {
	record.Record
	Name        string
	Website     *string
	Country     *string
	City        *string
	LogoURL     *string
	Description *string
	OwnerUserID string
	Status      CompanyStatus

	// OwnerUserName は取得時に結合で埋める表示専用フィールドです。保存されません。
	OwnerUserName *string
}

// CompanyDTO は Company のサービス境界表現です。
type CompanyDTO struct {
	ID            string
	Name          string
	Website       *string
	Country       *string
	City          *string
	LogoURL       *string
	Description   *string
	OwnerUserID   string
	Status        CompanyStatus
	OwnerUserName *string
	State         record.State
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
