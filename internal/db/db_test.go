package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-harvester/internal/types"
)

// The stored JSONB document must keep absence distinguishable from empty:
// absent fields are omitted, present-but-empty fields are kept.
func TestProfileRecordOmitsAbsentFields(t *testing.T) {
	prof := types.Profile{
		ProfileURL:   "https://example.com/in/jane",
		SearchedRole: "data analyst",
		Name:         types.Str("Jane Doe"),
		Summary:      types.Str(""),
	}

	record, err := json.Marshal(prof)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(record, &doc))

	assert.Contains(t, doc, "name")
	assert.Contains(t, doc, "summary")
	assert.Equal(t, "", doc["summary"])
	assert.NotContains(t, doc, "headline")
	assert.NotContains(t, doc, "location")
	assert.NotContains(t, doc, "experience")
}
