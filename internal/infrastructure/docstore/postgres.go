package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"skillax-backend/internal/shared/errs"
	"skillax-backend/pkg/docstore"
)

// PostgresStore implements docstore.Store on a single JSONB table. Every
// entity collection shares the table; (collection, id) is the primary key
// where id is the application-assigned identifier field, not a row key.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the documents table and its indexes if missing.
// Called once at startup; safe to re-run.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			doc JSONB NOT NULL,
			seq BIGSERIAL,
			PRIMARY KEY (collection, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_doc ON documents USING GIN (doc)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return upstream(err)
		}
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, doc map[string]any) error {
	id, _ := doc["id"].(string)
	if id == "" {
		return fmt.Errorf("%w: document has no id", errs.ErrValidationFailed)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`,
		collection, id, raw)
	if err != nil {
		return upstream(err)
	}
	return nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter docstore.Filter) (map[string]any, error) {
	where, args := compileFilter(filter, 2)
	query := `SELECT doc FROM documents WHERE collection = $1` + where + ` ORDER BY seq LIMIT 1`

	var raw []byte
	rows, err := s.pool.Query(ctx, query, append([]any{collection}, args...)...)
	if err != nil {
		return nil, upstream(err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	if err := rows.Scan(&raw); err != nil {
		return nil, upstream(err)
	}
	return decodeDoc(raw)
}

func (s *PostgresStore) FindMany(ctx context.Context, collection string, filter docstore.Filter, opts docstore.FindOptions) ([]map[string]any, error) {
	where, args := compileFilter(filter, 2)
	query := `SELECT doc FROM documents WHERE collection = $1` + where

	if opts.SortField != "" {
		dir := "ASC"
		if opts.SortDesc {
			dir = "DESC"
		}
		query += fmt.Sprintf(` ORDER BY %s %s NULLS LAST, seq`, jsonField(opts.SortField), dir)
	} else {
		query += ` ORDER BY seq`
	}
	if opts.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, opts.Limit)
	}
	if opts.Skip > 0 {
		query += fmt.Sprintf(` OFFSET %d`, opts.Skip)
	}

	rows, err := s.pool.Query(ctx, query, append([]any{collection}, args...)...)
	if err != nil {
		return nil, upstream(err)
	}
	defer rows.Close()

	out := []map[string]any{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, upstream(err)
		}
		doc, err := decodeDoc(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateOne(ctx context.Context, collection string, filter docstore.Filter, patch map[string]any) (int64, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return 0, fmt.Errorf("marshal patch: %w", err)
	}
	where, args := compileFilter(filter, 3)
	query := `UPDATE documents SET doc = doc || $2::jsonb
		WHERE collection = $1 AND id IN (
			SELECT id FROM documents WHERE collection = $1` + where + ` ORDER BY seq LIMIT 1
		)`
	tag, err := s.pool.Exec(ctx, query, append([]any{collection, raw}, args...)...)
	if err != nil {
		return 0, upstream(err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) DeleteOne(ctx context.Context, collection string, filter docstore.Filter) (int64, error) {
	where, args := compileFilter(filter, 2)
	query := `DELETE FROM documents
		WHERE collection = $1 AND id IN (
			SELECT id FROM documents WHERE collection = $1` + where + ` ORDER BY seq LIMIT 1
		)`
	tag, err := s.pool.Exec(ctx, query, append([]any{collection}, args...)...)
	if err != nil {
		return 0, upstream(err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) DeleteMany(ctx context.Context, collection string, filter docstore.Filter) (int64, error) {
	where, args := compileFilter(filter, 2)
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1`+where,
		append([]any{collection}, args...)...)
	if err != nil {
		return 0, upstream(err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string, filter docstore.Filter) (int64, error) {
	where, args := compileFilter(filter, 2)
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM documents WHERE collection = $1`+where,
		append([]any{collection}, args...)...).Scan(&n)
	if err != nil {
		return 0, upstream(err)
	}
	return n, nil
}

func (s *PostgresStore) Distinct(ctx context.Context, collection string, field string) ([]string, error) {
	f := jsonField(field)
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM documents WHERE collection = $1 AND %s IS NOT NULL ORDER BY 1`,
		f, f)
	rows, err := s.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, upstream(err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, upstream(err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Aggregate(ctx context.Context, collection string, pipe docstore.Pipeline) ([]docstore.GroupRow, error) {
	keyExpr := jsonField(pipe.GroupBy)
	if pipe.DateBucket {
		keyExpr = fmt.Sprintf("left(%s, 10)", keyExpr)
	}
	where, args := compileFilter(pipe.Match, 2)
	query := fmt.Sprintf(`SELECT %s AS k, count(*) FROM documents WHERE collection = $1%s`, keyExpr, where)
	if pipe.DropEmptyKeys {
		query += fmt.Sprintf(` AND %s IS NOT NULL AND %s <> ''`, keyExpr, keyExpr)
	} else {
		query += fmt.Sprintf(` AND %s IS NOT NULL`, keyExpr)
	}
	query += ` GROUP BY k`
	if pipe.SortByCountDesc {
		query += ` ORDER BY count(*) DESC, k ASC`
	} else {
		query += ` ORDER BY k ASC`
	}
	if pipe.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, pipe.Limit)
	}

	rows, err := s.pool.Query(ctx, query, append([]any{collection}, args...)...)
	if err != nil {
		return nil, upstream(err)
	}
	defer rows.Close()

	out := []docstore.GroupRow{}
	for rows.Next() {
		var row docstore.GroupRow
		if err := rows.Scan(&row.Key, &row.Count); err != nil {
			return nil, upstream(err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// compileFilter turns a structural filter into SQL predicates. Equality
// matches go through JSONB containment so value types survive; In and Gte
// compare on the text projection (timestamps are RFC3339 strings, so byte
// order is time order). Placeholders start at argOffset.
func compileFilter(filter docstore.Filter, argOffset int) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	var conds []string
	var args []any
	n := argOffset
	for field, want := range filter {
		switch w := want.(type) {
		case docstore.In:
			conds = append(conds, fmt.Sprintf("%s = ANY($%d)", jsonField(field), n))
			args = append(args, []string(w))
			n++
		case docstore.Gte:
			conds = append(conds, fmt.Sprintf("%s >= $%d", jsonField(field), n))
			args = append(args, string(w))
			n++
		case nil:
			conds = append(conds, fmt.Sprintf("(NOT doc ? %s OR doc->%s = 'null'::jsonb)",
				quoteLiteral(field), quoteLiteral(field)))
		default:
			fragment, err := json.Marshal(map[string]any{field: want})
			if err != nil {
				continue
			}
			conds = append(conds, fmt.Sprintf("doc @> $%d::jsonb", n))
			args = append(args, fragment)
			n++
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(conds, " AND "), args
}

// jsonField projects a document field to text. Field names come from
// compile-time constants, but quotes are stripped anyway.
func jsonField(field string) string {
	return "doc->>" + quoteLiteral(field)
}

func quoteLiteral(field string) string {
	return "'" + strings.ReplaceAll(field, "'", "") + "'"
}

func decodeDoc(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func upstream(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrUpstreamUnavailable, err)
}
