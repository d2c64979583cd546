package postgres

import (
	"database/sql"
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

// recordColumns は共通カラムの読み取りバッファです。各エンティティの Scan は
// これを先頭に連結して 1 回の Scan で行全体を読み取ります。
type recordColumns struct {
	id        string
	createdAt time.Time
	createdBy sql.NullString
	updatedAt sql.NullTime
	updatedBy sql.NullString
	state     int
}

func (c *recordColumns) dest() []any {
	return []any{&c.id, &c.createdAt, &c.createdBy, &c.updatedAt, &c.updatedBy, &c.state}
}

func (c *recordColumns) apply(r *record.Record) {
	r.ID = c.id
	r.CreatedAt = c.createdAt
	r.CreatedBy = c.createdBy.String
	if c.updatedAt.Valid {
		r.UpdatedAt = c.updatedAt.Time
	}
	r.UpdatedBy = c.updatedBy.String
	r.State = record.State(c.state)
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt16(v *int16) any {
	if v == nil {
		return nil
	}
	return *v
}

func textOrNull(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func timeOrNull(v time.Time) any {
	if v.IsZero() {
		return nil
	}
	return v
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func int16Ptr(v sql.NullInt16) *int16 {
	if !v.Valid {
		return nil
	}
	i := v.Int16
	return &i
}
