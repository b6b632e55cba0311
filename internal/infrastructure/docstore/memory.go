package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"skillax-backend/pkg/docstore"
)

// MemoryStore is an in-process docstore.Store. It backs tests and local
// development; the Postgres store is the production implementation.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]map[string]any)}
}

// cloneDoc round-trips through JSON so stored documents are detached from
// caller memory and normalized the same way a real document store would
// normalize them (nested values become maps/slices, numbers become float64).
func cloneDoc(doc map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}
	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc map[string]any) error {
	copied, err := cloneDoc(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], copied)
	return nil
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, filter docstore.Filter) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return cloneDoc(doc)
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindMany(_ context.Context, collection string, filter docstore.Filter, opts docstore.FindOptions) ([]map[string]any, error) {
	s.mu.RLock()
	var out []map[string]any
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			copied, err := cloneDoc(doc)
			if err != nil {
				s.mu.RUnlock()
				return nil, err
			}
			out = append(out, copied)
		}
	}
	s.mu.RUnlock()

	if opts.SortField != "" {
		field := opts.SortField
		sort.SliceStable(out, func(i, j int) bool {
			a, b := stringField(out[i], field), stringField(out[j], field)
			if opts.SortDesc {
				return a > b
			}
			return a < b
		})
	}
	if opts.Skip > 0 {
		if opts.Skip >= len(out) {
			return []map[string]any{}, nil
		}
		out = out[opts.Skip:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *MemoryStore) UpdateOne(_ context.Context, collection string, filter docstore.Filter, patch map[string]any) (int64, error) {
	normalized, err := cloneDoc(patch)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			for k, v := range normalized {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteOne(_ context.Context, collection string, filter docstore.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteMany(_ context.Context, collection string, filter docstore.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []map[string]any
	var deleted int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return deleted, nil
}

func (s *MemoryStore) Count(_ context.Context, collection string, filter docstore.Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Distinct(_ context.Context, collection string, field string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, doc := range s.collections[collection] {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		key := fmt.Sprint(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) Aggregate(_ context.Context, collection string, pipe docstore.Pipeline) ([]docstore.GroupRow, error) {
	s.mu.RLock()
	counts := make(map[string]int64)
	for _, doc := range s.collections[collection] {
		if !matches(doc, pipe.Match) {
			continue
		}
		key, present := groupKey(doc, pipe)
		if !present {
			continue
		}
		if key == "" && pipe.DropEmptyKeys {
			continue
		}
		counts[key]++
	}
	s.mu.RUnlock()

	rows := make([]docstore.GroupRow, 0, len(counts))
	for k, c := range counts {
		rows = append(rows, docstore.GroupRow{Key: k, Count: c})
	}
	sortGroupRows(rows, pipe.SortByCountDesc)
	if pipe.Limit > 0 && len(rows) > pipe.Limit {
		rows = rows[:pipe.Limit]
	}
	return rows, nil
}

// sortGroupRows orders rows by count descending or key ascending. Equal
// counts fall back to key ascending so repeated runs return identical output.
func sortGroupRows(rows []docstore.GroupRow, byCountDesc bool) {
	sort.Slice(rows, func(i, j int) bool {
		if byCountDesc {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
		}
		return rows[i].Key < rows[j].Key
	})
}

// groupKey extracts the grouping key. Documents missing the field (or
// holding null) report present=false and never count, mirroring the SQL
// store's IS NOT NULL predicate; an empty string is a present value and is
// only filtered under DropEmptyKeys.
func groupKey(doc map[string]any, pipe docstore.Pipeline) (string, bool) {
	v, ok := doc[pipe.GroupBy]
	if !ok || v == nil {
		return "", false
	}
	key := fmt.Sprint(v)
	if pipe.DateBucket && len(key) > 10 {
		key = key[:10]
	}
	return key, true
}

func stringField(doc map[string]any, field string) string {
	if v, ok := doc[field]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

func matches(doc map[string]any, filter docstore.Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		switch w := want.(type) {
		case docstore.In:
			if !ok || got == nil {
				return false
			}
			s := fmt.Sprint(got)
			found := false
			for _, candidate := range w {
				if s == candidate {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case docstore.Gte:
			if !ok || got == nil {
				return false
			}
			if fmt.Sprint(got) < string(w) {
				return false
			}
		case bool:
			b, isBool := got.(bool)
			if !ok || !isBool || b != w {
				return false
			}
		case nil:
			if ok && got != nil {
				return false
			}
		default:
			if !ok || got == nil {
				return false
			}
			if fmt.Sprint(got) != fmt.Sprint(want) {
				return false
			}
		}
	}
	return true
}
