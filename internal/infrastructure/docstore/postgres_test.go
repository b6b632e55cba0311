package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillax-backend/pkg/docstore"
)

func TestCompileFilterEmpty(t *testing.T) {
	where, args := compileFilter(docstore.Filter{}, 2)
	assert.Empty(t, where)
	assert.Nil(t, args)

	where, args = compileFilter(nil, 2)
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestCompileFilterEquality(t *testing.T) {
	where, args := compileFilter(docstore.Filter{"status": "new"}, 2)
	assert.Equal(t, " AND doc @> $2::jsonb", where)
	require.Len(t, args, 1)
	assert.JSONEq(t, `{"status":"new"}`, string(args[0].([]byte)))
}

func TestCompileFilterBoolEquality(t *testing.T) {
	where, args := compileFilter(docstore.Filter{"published": true}, 2)
	assert.Equal(t, " AND doc @> $2::jsonb", where)
	require.Len(t, args, 1)
	assert.JSONEq(t, `{"published":true}`, string(args[0].([]byte)))
}

func TestCompileFilterIn(t *testing.T) {
	where, args := compileFilter(docstore.Filter{
		"source": docstore.In{"website", "contact_form"},
	}, 2)
	assert.Equal(t, " AND doc->>'source' = ANY($2)", where)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"website", "contact_form"}, args[0])
}

func TestCompileFilterGte(t *testing.T) {
	where, args := compileFilter(docstore.Filter{
		"created_at": docstore.Gte("2025-01-01T00:00:00Z"),
	}, 3)
	assert.Equal(t, " AND doc->>'created_at' >= $3", where)
	require.Len(t, args, 1)
	assert.Equal(t, "2025-01-01T00:00:00Z", args[0])
}

func TestCompileFilterArgOffset(t *testing.T) {
	where, args := compileFilter(docstore.Filter{"id": "x"}, 5)
	assert.Equal(t, " AND doc @> $5::jsonb", where)
	assert.Len(t, args, 1)
}

func TestCompileFilterMultipleConditions(t *testing.T) {
	where, args := compileFilter(docstore.Filter{
		"slug":      "intro",
		"published": true,
	}, 2)
	// Map iteration order is unspecified; assert structure, not order.
	assert.Contains(t, where, " AND ")
	assert.Contains(t, where, "doc @> $2::jsonb")
	assert.Contains(t, where, "doc @> $3::jsonb")
	assert.Len(t, args, 2)
}

func TestJSONFieldQuoting(t *testing.T) {
	assert.Equal(t, "doc->>'status'", jsonField("status"))
	// Single quotes cannot survive into the SQL literal.
	assert.Equal(t, "doc->>'bad'", jsonField("b'ad"))
}
