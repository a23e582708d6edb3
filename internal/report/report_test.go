package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealevel-tools/anchorscan/internal/anchor"
	"github.com/sealevel-tools/anchorscan/internal/checker"
)

const fixedRunID = "00000000-0000-0000-0000-000000000001"

func fixtureReport() *Report {
	return Build(
		"stake_pool",
		[]byte{0xde, 0xad, 0xbe, 0xef},
		[]anchor.Discriminator{
			{Account: "StakePool", Bytes: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		},
		[]checker.Finding{
			{Context: "Distribute", FieldA: "from", FieldB: "to", AccountType: "Vault"},
		},
		FixedGenerator{ID: fixedRunID},
	)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestReport_RenderText_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixtureReport().RenderText(&buf))

	newGoldie(t).Assert(t, "report_text", buf.Bytes())
}

func TestReport_RenderJSON_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixtureReport().RenderJSON(&buf))

	newGoldie(t).Assert(t, "report_json", buf.Bytes())
}

func TestReport_RenderText_NoFindings(t *testing.T) {
	r := Build("clean_crate", nil, nil, nil, FixedGenerator{ID: fixedRunID})

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf))

	out := buf.String()
	assert.Contains(t, out, "clean_crate")
	assert.Contains(t, out, "no duplicate mutable accounts found")
	assert.NotContains(t, out, "program id")
}

func TestReport_RenderJSON_FindingsNeverNull(t *testing.T) {
	r := Build("clean_crate", nil, nil, nil, FixedGenerator{ID: fixedRunID})

	var buf bytes.Buffer
	require.NoError(t, r.RenderJSON(&buf))

	assert.Contains(t, buf.String(), `"findings": []`)
	assert.NotContains(t, buf.String(), "null")
}

func TestBuild_NilGeneratorDefaultsToUUID(t *testing.T) {
	r := Build("crate", nil, nil, nil, nil)

	// Random UUIDs are 36 chars with hyphens at fixed positions.
	require.Len(t, r.RunID, 36)
	assert.Equal(t, 4, strings.Count(r.RunID, "-"))
}

func TestBuild_EncodesConstantsAsHex(t *testing.T) {
	r := fixtureReport()

	assert.Equal(t, "deadbeef", r.ProgramID)
	require.Len(t, r.Discriminators, 1)
	assert.Equal(t, "StakePool", r.Discriminators[0].Account)
	assert.Equal(t, "0102030405060708", r.Discriminators[0].Bytes)
}

func TestFixedGenerator_Deterministic(t *testing.T) {
	gen := FixedGenerator{ID: "run-1"}
	assert.Equal(t, "run-1", gen.Generate())
	assert.Equal(t, "run-1", gen.Generate())
}
