package record

import "time"

// State はレコードのライフサイクル状態を表します。
// 0 が有効で、非ゼロはエンティティ固有の無効・却下・取下げなどの変種です。
type State int

const (
	// StateActive は一覧取得の対象となる有効状態です。
	StateActive State = 0
	// StateInactive は論理削除済みを表す汎用の無効状態です。
	StateInactive State = 1
)

// Record は全エンティティが埋め込む共通レコードです。
// CreatedAt / CreatedBy は初回保存時に一度だけ設定され、以後の更新では
// 呼び出し側の値ではなく保存済みの値が常に優先されます。
type Record struct {
	ID        string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
	State     State
}

// Base は Record 自身を返します。埋め込み先で Entity を満たすための実装です。
func (r *Record) Base() *Record { return r }

// Entity は共通レコードへのアクセスを提供する永続化対象の制約です。
type Entity interface {
	Base() *Record
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// RealClock は UTC の現在時刻を返す Clock を返します。
func RealClock() Clock { return realClock{} }
