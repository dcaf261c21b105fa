package repository

import (
	"fmt"
	"slices"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collector gathers the rows a delete removes by following cascading
// relations from the deleted row. Identifiers are kept as text so integer
// and UUID keys are handled alike.
type collector struct {
	tx    *gorm.DB
	order []string
	ids   map[string]map[string]struct{}
}

func newCollector(tx *gorm.DB) *collector {
	return &collector{tx: tx, ids: make(map[string]map[string]struct{})}
}

// add records ids for deletion and returns the ones not seen before. A table
// that receives new ids moves to the end of the discovery order.
func (c *collector) add(table string, ids []string) []string {
	set, ok := c.ids[table]
	if !ok {
		set = make(map[string]struct{})
		c.ids[table] = set
	}
	var fresh []string
	for _, id := range ids {
		if _, seen := set[id]; !seen {
			set[id] = struct{}{}
			fresh = append(fresh, id)
		}
	}
	if len(fresh) > 0 {
		if i := slices.Index(c.order, table); i >= 0 {
			c.order = slices.Delete(c.order, i, i+1)
		}
		c.order = append(c.order, table)
	}
	return fresh
}

func (c *collector) collect(table string, ids []string) error {
	fresh := c.add(table, ids)
	if len(fresh) == 0 {
		return nil
	}
	for _, rel := range referencesTo(table) {
		if rel.OnDelete != Cascade {
			continue
		}
		var children []string
		if err := c.tx.Table(rel.Child).Where(in(rel.Column, fresh)).Pluck("id", &children).Error; err != nil {
			return fmt.Errorf("collecting %s: %w", rel.Child, err)
		}
		if err := c.collect(rel.Child, children); err != nil {
			return err
		}
	}
	return nil
}

// check fails when a protected or no-action relation still has referencing
// rows outside the collected set.
func (c *collector) check(entity string) error {
	for _, rel := range Relations {
		if rel.OnDelete == Cascade {
			continue
		}
		parents := c.list(rel.Parent)
		if len(parents) == 0 {
			continue
		}
		q := c.tx.Table(rel.Child).Where(in(rel.Column, parents))
		if deleted := c.list(rel.Child); len(deleted) > 0 {
			q = q.Where(clause.Not(in("id", deleted)))
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return fmt.Errorf("checking %s: %w", rel.Child, err)
		}
		if n == 0 {
			continue
		}
		if rel.OnDelete == Protect {
			return domain.Integrity(entity, "protected: referenced by %d %s through %s", n, rel.Child, rel.Column)
		}
		return domain.Integrity(entity, "still referenced by %d %s through %s", n, rel.Child, rel.Column)
	}
	return nil
}

// delete removes the collected rows, most recently discovered tables first.
func (c *collector) delete() error {
	for i := len(c.order) - 1; i >= 0; i-- {
		table := c.order[i]
		if err := c.tx.Exec("DELETE FROM ? WHERE id IN ?", clause.Table{Name: table}, c.list(table)).Error; err != nil {
			return fmt.Errorf("deleting from %s: %w", table, err)
		}
	}
	return nil
}

func (c *collector) list(table string) []string {
	set := c.ids[table]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func in(column string, values []string) clause.IN {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return clause.IN{Column: clause.Column{Name: column}, Values: vals}
}
