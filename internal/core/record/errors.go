package record

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound は対象レコードが存在しない場合に返却されます。
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
)

// StoreError は永続化ストア起因の失敗を単一の型に包んで伝搬します。
// 制約違反や接続断を含むあらゆるストア例外がこの型でリポジトリ境界を越え、
// 元のエラーは Unwrap で参照できます。
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
