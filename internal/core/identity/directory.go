package identity

import (
	"context"
	"strings"
)

// Directory は認証基盤の上に置く薄い照会サーフェスです。
// システム予約の管理者アカウントを一覧から除外する以外のロジックは持ちません。
type Directory struct {
	provider           Provider
	reservedAdminEmail string
}

// NewDirectory は Directory を生成します。reservedAdminEmail に一致する
// アカウントは Users の結果から除外されます。
func NewDirectory(provider Provider, reservedAdminEmail string) *Directory {
	return &Directory{provider: provider, reservedAdminEmail: reservedAdminEmail}
}

// UserByID は ID でユーザーを取得します。
func (d *Directory) UserByID(ctx context.Context, id string) (*User, error) {
	return d.provider.FindByID(ctx, id)
}

// UserByEmail はメールアドレスでユーザーを取得します。
func (d *Directory) UserByEmail(ctx context.Context, email string) (*User, error) {
	return d.provider.FindByEmail(ctx, email)
}

// Roles は定義済みロールの一覧を返します。
func (d *Directory) Roles(ctx context.Context) ([]string, error) {
	return d.provider.Roles(ctx)
}

// Users はシステム予約の管理者アカウントを除く全ユーザーを返します。
func (d *Directory) Users(ctx context.Context) ([]*User, error) {
	users, err := d.provider.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*User, 0, len(users))
	for _, u := range users {
		if d.reservedAdminEmail != "" && strings.EqualFold(u.Email, d.reservedAdminEmail) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, nil
}
