package domain

import "encoding/json"

// ParseTables decodes the tablesJson payload carried inside an Extraction.
// Decoding is total: absent or malformed input yields an empty slice, never
// an error, so a bad payload cannot interrupt rendering.
func ParseTables(tablesJSON string) []ExtractedTable {
	if tablesJSON == "" {
		return []ExtractedTable{}
	}
	var tables []ExtractedTable
	if err := json.Unmarshal([]byte(tablesJSON), &tables); err != nil {
		return []ExtractedTable{}
	}
	if tables == nil {
		return []ExtractedTable{}
	}
	return tables
}

// Tables decodes the extraction's serialized tables. See ParseTables.
func (e *Extraction) Tables() []ExtractedTable {
	return ParseTables(e.TablesJSON)
}

// KeyValues decodes the extraction's serialized key-value pairs. See
// ParseKeyValues.
func (e *Extraction) KeyValues() []KeyValuePair {
	return ParseKeyValues(e.KeyValuesJSON)
}

// ParseKeyValues decodes the keyValuesJson payload carried inside an
// Extraction. Input order is preserved; decoding is total like ParseTables.
func ParseKeyValues(keyValuesJSON string) []KeyValuePair {
	if keyValuesJSON == "" {
		return []KeyValuePair{}
	}
	var pairs []KeyValuePair
	if err := json.Unmarshal([]byte(keyValuesJSON), &pairs); err != nil {
		return []KeyValuePair{}
	}
	if pairs == nil {
		return []KeyValuePair{}
	}
	return pairs
}
