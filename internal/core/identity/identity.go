package identity

import (
	"context"
	"errors"
)

// ロール名は認証基盤が発行する文字列をそのまま扱います。
const (
	RoleAdmin     = "Admin"
	RoleEmployer  = "Employer"
	RoleJobSeeker = "JobSeeker"
)

var (
	// ErrUserNotFound はユーザーが存在しない場合に返却されます。
	ErrUserNotFound = errors.New("user not found")
)

// User は認証基盤が保持するユーザーの読み取り専用ビューです。
// 資格情報やパスワードはこの境界を越えません。
type User struct {
	ID       string
	UserName string
	Email    string
	Phone    string
	Role     string
}

// Provider は外部の認証基盤への問い合わせインターフェースです。
type Provider interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Roles(ctx context.Context) ([]string, error)
}
