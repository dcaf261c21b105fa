package repository

import (
	"context"
	"encoding"
	"errors"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Query selects and orders rows of one table. Filters are matched for
// equality (nil matches NULL, a slice matches any of its values). OrderBy
// entries name a field, prefixed with "-" for descending order. Fields may be
// given by Go name, column name or JSON name.
type Query struct {
	Filters map[string]any
	OrderBy []string
	Limit   int
	Offset  int
}

// Where returns a copy of q with one more filter.
func (q Query) Where(field string, value any) Query {
	filters := make(map[string]any, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[field] = value
	q.Filters = filters
	return q
}

// Query returns the matching rows lazily. Each range over the sequence runs
// the query again.
func (t *Table[T, K]) Query(ctx context.Context, q Query) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		tx, err := t.scope(ctx, q, true)
		if err != nil {
			yield(nil, err)
			return
		}
		rows, err := tx.Rows()
		if err != nil {
			yield(nil, wrap("querying", t.entity, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var v T
			if err := t.db.WithContext(ctx).ScanRows(rows, &v); err != nil {
				yield(nil, wrap("scanning", t.entity, err))
				return
			}
			if !yield(&v, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, wrap("querying", t.entity, err))
		}
	}
}

// List collects a query into a slice.
func (t *Table[T, K]) List(ctx context.Context, q Query) ([]T, error) {
	var out []T
	for v, err := range t.Query(ctx, q) {
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// Count returns the number of rows matching the filters of q.
func (t *Table[T, K]) Count(ctx context.Context, q Query) (int64, error) {
	tx, err := t.scope(ctx, q, false)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, wrap("counting", t.entity, err)
	}
	return n, nil
}

func (t *Table[T, K]) scope(ctx context.Context, q Query, paged bool) (*gorm.DB, error) {
	tx := t.db.WithContext(ctx).Model(new(T))

	for name, value := range q.Filters {
		f, err := t.field(name)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: f.DBName}, Value: value})
	}
	if !paged {
		return tx, nil
	}

	order := q.OrderBy
	if len(order) == 0 {
		order = t.order
	}
	sawKey := false
	for _, name := range order {
		desc := strings.HasPrefix(name, "-")
		f, err := t.field(strings.TrimPrefix(name, "-"))
		if err != nil {
			return nil, err
		}
		sawKey = sawKey || f.PrimaryKey
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: f.DBName}, Desc: desc})
	}
	if !sawKey {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: t.schema.PrioritizedPrimaryField.DBName}})
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	return tx, nil
}

// field resolves a Go, column or JSON field name to a stored column.
func (t *Table[T, K]) field(name string) (*schema.Field, error) {
	if f := t.schema.LookUpField(name); f != nil && f.DBName != "" {
		return f, nil
	}
	for _, f := range t.schema.Fields {
		if f.DBName != "" && jsonName(f) == name {
			return f, nil
		}
	}
	return nil, domain.Invalid(t.entity, name, "field", "")
}

func jsonName(f *schema.Field) string {
	return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
}

var dateType = reflect.TypeOf(model.Date{})

// FilterValue converts a textual filter value, such as a query string
// parameter, into a value of the field's type. "null" selects NULL.
func (t *Table[T, K]) FilterValue(name, raw string) (any, error) {
	f, err := t.field(name)
	if err != nil {
		return nil, err
	}
	if raw == "null" {
		return nil, nil
	}

	typ := f.FieldType
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	invalid := func(rule string) error {
		return domain.Invalid(t.entity, name, rule, raw)
	}

	if typ == dateType {
		d, err := model.ParseDate(raw)
		if err != nil {
			return nil, invalid("date")
		}
		return d, nil
	}

	ptr := reflect.New(typ)
	if u, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(raw)); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return nil, invalid("code")
			}
			return nil, invalid("format")
		}
		return ptr.Elem().Interface(), nil
	}

	switch typ.Kind() {
	case reflect.String:
		ptr.Elem().SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, invalid("boolean")
		}
		ptr.Elem().SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return nil, invalid("number")
		}
		ptr.Elem().SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return nil, invalid("number")
		}
		ptr.Elem().SetUint(n)
	default:
		return nil, invalid("filterable")
	}
	return ptr.Elem().Interface(), nil
}
