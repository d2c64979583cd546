// Package postgres は認証基盤のユーザーストアを読み取り専用で参照する
// identity.Provider 実装を提供します。書き込みは認証基盤側の責務です。
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/identity"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

// user_roles の主キーは (user_id, role) で複数ロールを許すため、結合結果を
// ユーザー単位に集約して 1 行にする。アプリケーションはユーザーごとに
// 1 ロールのモデルで動くので、万一複数付与されていても代表値に畳む。
const (
	userSelect = "SELECT u.id, u.user_name, u.email, u.phone, min(r.role)" +
		" FROM users u LEFT JOIN user_roles r ON r.user_id = u.id"
	userGroupBy = " GROUP BY u.id, u.user_name, u.email, u.phone"

	findUserByIDQuery    = userSelect + " WHERE u.id = $1" + userGroupBy + " LIMIT 1"
	findUserByEmailQuery = userSelect + " WHERE lower(u.email) = lower($1)" + userGroupBy + " LIMIT 1"
	listUsersQuery       = userSelect + userGroupBy + " ORDER BY u.user_name ASC, u.id ASC"
	listRolesQuery       = "SELECT name FROM roles ORDER BY name ASC"
)

// Provider は PostgreSQL 上のユーザーテーブルを参照する identity.Provider です。
type Provider struct {
	pool   pgdb.Queryer
	logger *slog.Logger
}

// NewProvider は Provider を生成します。logger が nil の場合は既定ロガーが
// 使われます。
func NewProvider(pool pgdb.Queryer, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{pool: pool, logger: logger}
}

// FindByID は主キーでユーザーを 1 件取得します。
func (p *Provider) FindByID(ctx context.Context, id string) (*identity.User, error) {
	exec := pgdb.QueryerFromContext(ctx, p.pool)
	user, err := scanUser(exec.QueryRow(ctx, findUserByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		return nil, p.failure("find_by_id", err)
	}
	return user, nil
}

// FindByEmail はメールアドレスでユーザーを 1 件取得します。
// 照合は大文字小文字を区別しません。
func (p *Provider) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	exec := pgdb.QueryerFromContext(ctx, p.pool)
	user, err := scanUser(exec.QueryRow(ctx, findUserByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		return nil, p.failure("find_by_email", err)
	}
	return user, nil
}

// List は全ユーザーを返します。予約管理者の除外は identity.Directory が
// 行うため、ここではフィルタしません。
func (p *Provider) List(ctx context.Context) ([]*identity.User, error) {
	exec := pgdb.QueryerFromContext(ctx, p.pool)
	rows, err := exec.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, p.failure("list", err)
	}
	defer rows.Close()

	var users []*identity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, p.failure("list", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, p.failure("list", err)
	}
	return users, nil
}

// Roles は定義済みロール名の一覧を返します。
func (p *Provider) Roles(ctx context.Context) ([]string, error) {
	exec := pgdb.QueryerFromContext(ctx, p.pool)
	rows, err := exec.Query(ctx, listRolesQuery)
	if err != nil {
		return nil, p.failure("roles", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, p.failure("roles", err)
		}
		roles = append(roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, p.failure("roles", err)
	}
	return roles, nil
}

func scanUser(row pgx.Row) (*identity.User, error) {
	var (
		user  identity.User
		phone sql.NullString
		role  sql.NullString
	)
	if err := row.Scan(&user.ID, &user.UserName, &user.Email, &phone, &role); err != nil {
		return nil, err
	}
	user.Phone = phone.String
	user.Role = role.String
	return &user, nil
}

func (p *Provider) failure(op string, err error) error {
	p.logger.Error("data access failure",
		slog.String("table", "users"),
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return &record.StoreError{Op: op, Table: "users", Err: err}
}
