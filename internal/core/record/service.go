package record

import (
	"context"

	"github.com/google/uuid"
)

// Mapper はエンティティと DTO の明示的な相互変換を表します。
// リフレクションによるフィールドコピーは行わず、エンティティごとに
// 変換関数を一度だけ定義します。
type Mapper[T Entity, D any] struct {
	ToDTO    func(T) D
	ToEntity func(D) T
}

// Service は Repository を DTO 境界で包む汎用サービスです。
// 全ドメインエンティティが同一の契約を共有し、エンティティごとの
// カスタマイズ点は Mapper のみです。サービス層は独自のエラー種別を
// 追加せず、リポジトリの結果をそのまま伝搬します。
type Service[T Entity, D any] struct {
	repo   Repository[T]
	mapper Mapper[T, D]
}

// NewService は Service を生成します。
func NewService[T Entity, D any](repo Repository[T], mapper Mapper[T, D]) *Service[T, D] {
	return &Service[T, D]{repo: repo, mapper: mapper}
}

// GetAll は有効な全行を DTO に変換して返します。取得順は維持されます。
func (s *Service[T, D]) GetAll(ctx context.Context) ([]D, error) {
	entities, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]D, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, s.mapper.ToDTO(entity))
	}
	return dtos, nil
}

// GetByID は状態に関わらず 1 件を取得します。
func (s *Service[T, D]) GetByID(ctx context.Context, id string) (D, error) {
	var zero D
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.mapper.ToDTO(entity), nil
}

// Add は DTO を新規保存し、採番した ID を返します。ID は常にサービス側で
// 生成し、呼び出し側が DTO に指定した ID は破棄されます。
// actor は作成者として監査フィールドに記録されます。
func (s *Service[T, D]) Add(ctx context.Context, actor string, dto D) (string, error) {
	entity := s.mapper.ToEntity(dto)
	base := entity.Base()
	base.ID = uuid.NewString()
	base.CreatedBy = actor

	if err := s.repo.Create(ctx, entity); err != nil {
		return "", err
	}
	return base.ID, nil
}

// Update は DTO の内容で既存行を置き換えます。作成時の監査フィールドは
// リポジトリ側で保存済みの値に復元されるため、DTO に何を指定しても
// 上書きされることはありません。
func (s *Service[T, D]) Update(ctx context.Context, actor string, dto D) error {
	entity := s.mapper.ToEntity(dto)
	entity.Base().UpdatedBy = actor
	return s.repo.Update(ctx, entity)
}

// ChangeState は行の State を書き換えます。
func (s *Service[T, D]) ChangeState(ctx context.Context, id string, state State) error {
	return s.repo.ChangeState(ctx, id, state)
}

// Deactivate は利用者に公開する標準の「削除」操作で、State を
// StateInactive に設定します。行の物理削除は行いません。
func (s *Service[T, D]) Deactivate(ctx context.Context, id string) error {
	return s.repo.ChangeState(ctx, id, StateInactive)
}

// Delete は行を物理削除します。通常のフローでは Deactivate を使用します。
func (s *Service[T, D]) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
