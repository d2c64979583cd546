package record

import "context"

// Repository はエンティティ 1 種類に対する汎用永続化インターフェースです。
// 同一行への同時更新は後勝ちで、バージョントークンによる楽観ロックは行いません。
type Repository[T Entity] interface {
	// ListActive は State が StateActive の行のみを返します。
	// 非ゼロ状態の行はどの一覧操作にも現れません。
	ListActive(ctx context.Context) ([]T, error)
	// GetByID は状態に関わらず主キーで 1 行を取得します。
	// 対象が存在しない場合は ErrNotFound を返します。
	GetByID(ctx context.Context, id string) (T, error)
	// Create は CreatedAt を現在時刻に設定して新規行を保存します。
	Create(ctx context.Context, entity T) error
	// Update は保存済み行を ID で再読込し、CreatedAt / CreatedBy を
	// 保存済みの値で上書きしたうえで行全体を置き換えます。
	// 対象が存在しない場合は ErrNotFound を返します（upsert は行いません）。
	Update(ctx context.Context, entity T) error
	// Delete は行を物理削除します。通常のフローでは ChangeState を使用します。
	Delete(ctx context.Context, id string) error
	// ChangeState は保存済み行の State を書き換えます。
	// 既に目標状態であっても成功します。
	ChangeState(ctx context.Context, id string, state State) error
}
