package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogurasousui/job-portal/internal/core/identity"
	"github.com/ogurasousui/job-portal/internal/core/record"
)

// Destination はログイン直後の遷移先を表します。
type Destination string

const (
	// DestAdminDashboard は管理者ダッシュボードです。
	DestAdminDashboard Destination = "admin_dashboard"
	// DestJobListing は一般ユーザー向けの求人一覧です。
	DestJobListing Destination = "job_listing"
	// DestCreateEmployerProfile は雇用主プロフィール作成画面です。
	DestCreateEmployerProfile Destination = "create_employer_profile"
	// DestCreateCompany は会社登録画面です。
	DestCreateCompany Destination = "create_company"
	// DestPendingApproval は会社の承認待ち案内です。
	DestPendingApproval Destination = "pending_approval"
	// DestCompanyRejected は会社の却下案内です。
	DestCompanyRejected Destination = "company_rejected"
	// DestEmployerDashboard は承認済み雇用主のダッシュボードです。
	DestEmployerDashboard Destination = "employer_dashboard"
)

var (
	// ErrUnknownCompanyStatus は保存されている承認状態が既知の値でない場合に
	// 返却されます。
	ErrUnknownCompanyStatus = errors.New("unknown company status")
	// ErrDuplicateEmployerProfile は同一ユーザーに有効なプロフィールが
	// 複数存在する場合に返却されます。ストアの一意制約が破られているため、
	// どちらかを採用する代わりに失敗させます。
	ErrDuplicateEmployerProfile = errors.New("duplicate employer profile")
)

type employerProfileSource interface {
	GetAll(ctx context.Context) ([]EmployerProfileDTO, error)
}

type companySource interface {
	GetByID(ctx context.Context, id string) (CompanyDTO, error)
}

// LoginRouter は認証成功時に 1 度だけ評価される遷移先の分類器です。
// 永続化された現在状態（プロフィールの有無、会社の有無、承認状態）を
// 読み取って分類するのみで、状態遷移は一切行いません。承認・却下への遷移は
// 管理者が Company エンティティを通常の Update / ChangeState で書き換える
// ことで別経路から発生します。
type LoginRouter struct {
	profiles  employerProfileSource
	companies companySource
}

// NewLoginRouter は LoginRouter を生成します。
func NewLoginRouter(profiles employerProfileSource, companies companySource) *LoginRouter {
	return &LoginRouter{profiles: profiles, companies: companies}
}

// Resolve はユーザーのロールと雇用主オンボーディングの進行状況から
// 遷移先を決定します。入力は呼び出しのたびにストアから読み直されます。
func (r *LoginRouter) Resolve(ctx context.Context, user identity.User) (Destination, error) {
	if user.Role == identity.RoleAdmin {
		return DestAdminDashboard, nil
	}
	if user.Role != identity.RoleEmployer {
		return DestJobListing, nil
	}

	profile, err := r.findProfile(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return DestCreateEmployerProfile, nil
	}
	if profile.CompanyID == nil || *profile.CompanyID == "" {
		return DestCreateCompany, nil
	}

	company, err := r.companies.GetByID(ctx, *profile.CompanyID)
	if err != nil {
		// プロフィールが消えた会社を指している場合は再登録へ誘導する。
		if errors.Is(err, record.ErrNotFound) {
			return DestCreateCompany, nil
		}
		return "", err
	}

	switch company.Status {
	case CompanyPending:
		return DestPendingApproval, nil
	case CompanyRejected:
		return DestCompanyRejected, nil
	case CompanyApproved:
		return DestEmployerDashboard, nil
	default:
		return "", fmt.Errorf("company %s: %w", company.ID, ErrUnknownCompanyStatus)
	}
}

// findProfile はユーザーの有効なプロフィールを 1 件だけ探します。
// 有効なプロフィールはユーザーごとに 1 件までという不変条件をここでも
// 検査し、複数見つかった場合は ErrDuplicateEmployerProfile を返します。
func (r *LoginRouter) findProfile(ctx context.Context, userID string) (*EmployerProfileDTO, error) {
	profiles, err := r.profiles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var found *EmployerProfileDTO
	for i := range profiles {
		if profiles[i].UserID != userID {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("user %s: %w", userID, ErrDuplicateEmployerProfile)
		}
		found = &profiles[i]
	}
	return found, nil
}
