package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTables_Empty(t *testing.T) {
	assert.Empty(t, ParseTables(""))
}

func TestParseTables_Malformed(t *testing.T) {
	assert.Empty(t, ParseTables("not json"))
	assert.Empty(t, ParseTables("{"))
	assert.Empty(t, ParseTables(`{"name":"not an array"}`))
}

func TestParseTables_NullLiteral(t *testing.T) {
	assert.Empty(t, ParseTables("null"))
}

func TestParseTables_RaggedRowsPreserved(t *testing.T) {
	tables := ParseTables(`[{"name":"T1","rows":[["a","b"],["c"]]}]`)
	require.Len(t, tables, 1)
	assert.Equal(t, "T1", tables[0].Name)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, []string{"a", "b"}, tables[0].Rows[0])
	assert.Equal(t, []string{"c"}, tables[0].Rows[1])
}

func TestParseKeyValues_Empty(t *testing.T) {
	assert.Empty(t, ParseKeyValues(""))
	assert.Empty(t, ParseKeyValues("not json"))
}

func TestParseKeyValues_SinglePair(t *testing.T) {
	pairs := ParseKeyValues(`[{"key":"Budget","value":"$1M"}]`)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Budget", pairs[0].Key)
	assert.Equal(t, "$1M", pairs[0].Value)
}

func TestParseKeyValues_OrderPreserved(t *testing.T) {
	pairs := ParseKeyValues(`[{"key":"Zeta","value":"1"},{"key":"Alpha","value":"2"}]`)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Zeta", pairs[0].Key)
	assert.Equal(t, "Alpha", pairs[1].Key)
}

func TestExtraction_DecodeHelpers(t *testing.T) {
	ex := &Extraction{
		TablesJSON:    `[{"name":"T","rows":[["x"]]}]`,
		KeyValuesJSON: `[{"key":"k","value":"v"}]`,
	}
	assert.Len(t, ex.Tables(), 1)
	assert.Len(t, ex.KeyValues(), 1)

	empty := &Extraction{}
	assert.Empty(t, empty.Tables())
	assert.Empty(t, empty.KeyValues())
}
