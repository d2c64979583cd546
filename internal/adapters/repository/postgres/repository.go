package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/job-portal/internal/core/record"
	pgdb "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

// 全テーブル共通のカラム。書き込み・読み取りとも必ずこの並びが先頭に来ます。
var recordWriteColumns = []string{"id", "created_at", "created_by", "updated_at", "updated_by", "state"}

// Table は 1 エンティティ分の明示的なテーブル定義です。リフレクションに
// よるフィールド対応は行わず、カラム列・値・読み取りをエンティティごとに
// 一度だけ記述します。
type Table[T record.Entity] struct {
	// Name はテーブル名です。書き込みは常にこのテーブル単体に対して行われます。
	Name string
	// Alias は読み取り時のテーブル別名です。Joins を使う場合に設定します。
	Alias string
	// Joins は読み取り専用の結合句です。表示用の関連名称をここで引きます。
	Joins string
	// Columns は共通カラムを除く書き込み対象カラムです。
	Columns []string
	// SelectColumns は読み取り時の追加カラムです。Joins 使用時は別名で修飾します。
	// 省略時は Columns が使われます。
	SelectColumns []string
	// Args は Columns と同じ並びで書き込み値を返します。
	Args func(T) []any
	// Scan は共通カラム + SelectColumns の並びで 1 行を読み取ります。
	Scan func(row pgx.Row) (T, error)
}

// TransactionManager は Update の読み出しと書き込みを 1 トランザクションに
// まとめるための抽象化です。
type TransactionManager interface {
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTxManager struct{}

func (noopTxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Repository は PostgreSQL を利用した record.Repository の汎用実装です。
// 全エンティティがこの 1 実装を共有し、エンティティ差分は Table 定義のみです。
// ストア起因の失敗はすべて record.StoreError に包み、ログに記録したうえで
// 境界の外へ伝搬します。
type Repository[T record.Entity] struct {
	pool   pgdb.Queryer
	tx     TransactionManager
	clock  record.Clock
	logger *slog.Logger
	table  Table[T]

	listQuery   string
	getQuery    string
	insertQuery string
	updateQuery string
	deleteQuery string
	stateQuery  string
}

// NewRepository は Repository を生成します。tx / clock / logger が nil の
// 場合はそれぞれ素通し・実時刻・既定ロガーが使われます。
func NewRepository[T record.Entity](pool pgdb.Queryer, tx TransactionManager, clock record.Clock, logger *slog.Logger, table Table[T]) *Repository[T] {
	if tx == nil {
		tx = noopTxManager{}
	}
	if clock == nil {
		clock = record.RealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Repository[T]{pool: pool, tx: tx, clock: clock, logger: logger, table: table}
	r.buildQueries()
	return r
}

func (r *Repository[T]) buildQueries() {
	t := r.table

	prefix := ""
	from := t.Name
	if t.Alias != "" {
		prefix = t.Alias + "."
		from = t.Name + " " + t.Alias
	}
	if t.Joins != "" {
		from += " " + t.Joins
	}

	selectCols := make([]string, 0, len(recordWriteColumns)+len(t.Columns))
	for _, col := range recordWriteColumns {
		selectCols = append(selectCols, prefix+col)
	}
	extra := t.SelectColumns
	if extra == nil {
		extra = t.Columns
	}
	selectCols = append(selectCols, extra...)

	selectList := strings.Join(selectCols, ", ")
	r.listQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %sstate = $1 ORDER BY %screated_at DESC, %sid DESC",
		selectList, from, prefix, prefix, prefix)
	r.getQuery = fmt.Sprintf("SELECT %s FROM %s WHERE %sid = $1 LIMIT 1", selectList, from, prefix)

	writeCols := append(append([]string{}, recordWriteColumns...), t.Columns...)
	r.insertQuery = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(writeCols, ", "), placeholders(1, len(writeCols)))

	setCols := make([]string, 0, len(writeCols)-1)
	for i, col := range writeCols[1:] {
		setCols = append(setCols, fmt.Sprintf("%s = $%d", col, i+1))
	}
	r.updateQuery = fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		t.Name, strings.Join(setCols, ", "), len(writeCols))

	r.deleteQuery = fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.Name)
	r.stateQuery = fmt.Sprintf("UPDATE %s SET state = $1, updated_at = $2 WHERE id = $3", t.Name)
}

// ListActive は state が有効な行のみを返します。論理削除・却下済みの行は
// この経路には一切現れません。
func (r *Repository[T]) ListActive(ctx context.Context) ([]T, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, r.listQuery, int(record.StateActive))
	if err != nil {
		return nil, r.failure("list", err)
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		entity, err := r.table.Scan(rows)
		if err != nil {
			return nil, r.failure("list", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, r.failure("list", err)
	}
	return entities, nil
}

// GetByID は状態に関わらず主キーで 1 行を取得します。却下理由の表示などで
// 無効状態の行にも到達できる必要があるためです。
func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	entity, err := r.table.Scan(exec.QueryRow(ctx, r.getQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, record.ErrNotFound
		}
		return zero, r.failure("get", err)
	}
	return entity, nil
}

// Create は CreatedAt を現在時刻に設定して新規行を保存します。
// 外部キー違反などの制約エラーは StoreError として報告されます。
func (r *Repository[T]) Create(ctx context.Context, entity T) error {
	base := entity.Base()
	base.CreatedAt = r.clock.Now()

	args := append([]any{
		base.ID,
		base.CreatedAt,
		textOrNull(base.CreatedBy),
		timeOrNull(base.UpdatedAt),
		textOrNull(base.UpdatedBy),
		int(base.State),
	}, r.table.Args(entity)...)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, r.insertQuery, args...); err != nil {
		return r.failure("create", err)
	}
	return nil
}

// Update は保存済み行を再読込して CreatedAt / CreatedBy を引き継ぎ、
// UpdatedAt を現在時刻に設定したうえで行全体を置き換えます。読み出しと
// 置き換えは 1 つの読み書きトランザクションで行われます。バージョン
// トークンは使わないため、同一行への同時更新は後勝ちです。
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	base := entity.Base()
	if base.ID == "" {
		return record.ErrInvalidID
	}

	return r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		stored, err := r.GetByID(txCtx, base.ID)
		if err != nil {
			return err
		}

		storedBase := stored.Base()
		base.CreatedAt = storedBase.CreatedAt
		base.CreatedBy = storedBase.CreatedBy
		base.UpdatedAt = r.clock.Now()

		args := append([]any{
			base.CreatedAt,
			textOrNull(base.CreatedBy),
			base.UpdatedAt,
			textOrNull(base.UpdatedBy),
			int(base.State),
		}, r.table.Args(entity)...)
		args = append(args, base.ID)

		exec := pgdb.QueryerFromContext(txCtx, r.pool)
		tag, err := exec.Exec(txCtx, r.updateQuery, args...)
		if err != nil {
			return r.failure("update", err)
		}
		if tag.RowsAffected() == 0 {
			return record.ErrNotFound
		}
		return nil
	})
}

// Delete は行を物理削除します。通常の削除フローは ChangeState を使います。
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, r.deleteQuery, id)
	if err != nil {
		return r.failure("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrNotFound
	}
	return nil
}

// ChangeState は保存済み行の state を書き換えます。既に目標状態の行にも
// 成功し、存在しない id には record.ErrNotFound を返します。
func (r *Repository[T]) ChangeState(ctx context.Context, id string, state record.State) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, r.stateQuery, int(state), r.clock.Now(), id)
	if err != nil {
		return r.failure("change_state", err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrNotFound
	}
	return nil
}

func (r *Repository[T]) failure(op string, err error) error {
	r.logger.Error("data access failure",
		slog.String("table", r.table.Name),
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return &record.StoreError{Op: op, Table: r.table.Name, Err: err}
}

func placeholders(start, n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("$%d", start+i))
	}
	return strings.Join(parts, ", ")
}
