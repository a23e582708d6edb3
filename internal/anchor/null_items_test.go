package anchor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealevel-tools/anchorscan/internal/mir"
)

// A front end may emit null entries in the items array; the snapshot decodes
// and every extractor must treat the holes as absent items, not crash.
func TestExtractors_NullItemsEntry(t *testing.T) {
	p, err := mir.DecodeSnapshot(strings.NewReader(`{"crate": "x", "items": [null]}`))
	require.NoError(t, err)

	assert.Empty(t, ExtractContexts(p))
	assert.Empty(t, ExtractAccountMetas(p))
	assert.Nil(t, ExtractProgramID(p))
	assert.Empty(t, ExtractDiscriminators(p))
}

func TestExtractors_NullEntryAmongRealItems(t *testing.T) {
	snapshot := `{
  "crate": "x",
  "items": [
    null,
    {"id": 1, "kind": "fn", "name": "x::__client_accounts_x::X::to_account_metas"},
    null
  ]
}`
	p, err := mir.DecodeSnapshot(strings.NewReader(snapshot))
	require.NoError(t, err)

	// The real candidate has no body and is skipped; the nulls around it
	// must not disturb the scan.
	assert.Empty(t, ExtractAccountMetas(p))
	assert.Nil(t, ExtractProgramID(p))
	assert.Empty(t, ExtractDiscriminators(p))
}
