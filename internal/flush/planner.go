// Package flush plans the emptying of tables while satisfying
// referential-integrity constraints: it discovers every table referencing
// a target through transitive foreign-key traversal and emits either a
// cascading delete sequence or a constraint-drop-then-delete sequence.
package flush

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"db-shift/internal/dialect"
)

// Edge is one foreign-key reference discovered by the traversal. Depth 1
// means a direct reference into the root table; deeper levels follow keys
// into the referencing tables. Edges are facts derived per plan call and
// never cached: the schema may change between calls.
type Edge struct {
	Constraint string
	Table      string
	RefTable   string
	Depth      int
}

// Querier is the slice of *sql.DB the planner needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Planner emits the statement sequence for one flush request.
type Planner struct {
	DB      Querier
	Dialect dialect.Dialect
	Schema  string
}

type fkRow struct {
	constraint string
	table      string
	refTable   string
}

// Plan produces the delete sequence for the given tables. Tables are
// processed in lexicographic order regardless of input ordering, so the
// emitted sequence is deterministic.
//
// With cascade off, every discovered constraint is dropped before the root
// delete; the constraints are not restored afterwards — schema
// restoration, if wanted, belongs to the caller. With cascade on, every
// referencing table is deleted deepest-first before the root.
func (p *Planner) Plan(ctx context.Context, tables []string, cascade bool) ([]string, error) {
	rows, err := p.loadForeignKeys(ctx)
	if err != nil {
		return nil, err
	}

	roots := make([]string, len(tables))
	copy(roots, tables)
	sort.Strings(roots)

	var stmts []string
	emitted := make(map[string]bool)
	emit := func(s string) {
		if !emitted[s] {
			emitted[s] = true
			stmts = append(stmts, s)
		}
	}

	for _, root := range roots {
		edges := closure(rows, root)
		if cascade {
			for _, t := range referencingTables(edges) {
				emit(fmt.Sprintf("DELETE FROM %s", p.Dialect.QuoteName(t)))
			}
		} else {
			for _, e := range edges {
				emit(fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s",
					p.Dialect.QuoteName(e.Table), p.Dialect.QuoteName(e.Constraint)))
			}
		}
		emit(fmt.Sprintf("DELETE FROM %s", p.Dialect.QuoteName(root)))
	}
	return stmts, nil
}

// Discover exposes the edge set reachable from one table, mainly for
// inspection from the CLI.
func (p *Planner) Discover(ctx context.Context, table string) ([]Edge, error) {
	rows, err := p.loadForeignKeys(ctx)
	if err != nil {
		return nil, err
	}
	return closure(rows, table), nil
}

func (p *Planner) loadForeignKeys(ctx context.Context) ([]fkRow, error) {
	schema := p.Dialect.GetSchemaName(p.Schema)
	rows, err := p.DB.QueryContext(ctx, p.Dialect.GetForeignKeysQuery(schema), schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer rows.Close()

	var out []fkRow
	for rows.Next() {
		var r fkRow
		if err := rows.Scan(&r.constraint, &r.table, &r.refTable); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}
	return out, nil
}

// closure walks the foreign-key graph outward from root, breadth first.
// A node is enqueued at most once, so self-referencing and cyclic schemas
// terminate; the constraint edge itself is still recorded the first time
// it is seen. Edges come back depth-descending, the order their
// constraints must be dropped in.
func closure(rows []fkRow, root string) []Edge {
	visited := map[string]bool{strings.ToUpper(root): true}
	seen := make(map[string]bool)
	frontier := []string{root}

	var edges []Edge
	depth := 0
	for len(frontier) > 0 {
		depth++
		var next []string
		for _, node := range frontier {
			for _, r := range rows {
				if !strings.EqualFold(r.refTable, node) || seen[r.constraint] {
					continue
				}
				seen[r.constraint] = true
				edges = append(edges, Edge{
					Constraint: r.constraint,
					Table:      r.table,
					RefTable:   r.refTable,
					Depth:      depth,
				})
				key := strings.ToUpper(r.table)
				if !visited[key] {
					visited[key] = true
					next = append(next, r.table)
				}
			}
		}
		frontier = next
	}

	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Depth != edges[j].Depth {
			return edges[i].Depth > edges[j].Depth
		}
		return edges[i].Constraint < edges[j].Constraint
	})
	return edges
}

// referencingTables lists the distinct referencing tables deepest-first,
// so deletes run in an order that respects the reference chain.
func referencingTables(edges []Edge) []string {
	depths := make(map[string]int)
	for _, e := range edges {
		if e.Depth > depths[e.Table] {
			depths[e.Table] = e.Depth
		}
	}
	tables := make([]string, 0, len(depths))
	for t := range depths {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool {
		if depths[tables[i]] != depths[tables[j]] {
			return depths[tables[i]] > depths[tables[j]]
		}
		return tables[i] < tables[j]
	})
	return tables
}
