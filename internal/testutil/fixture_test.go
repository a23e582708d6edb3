package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealevel-tools/anchorscan/internal/mir"
)

func TestBuildAnchorProgram_Shape(t *testing.T) {
	p := BuildAnchorProgram("stake_pool",
		ContextSpec{
			Name: "Deposit",
			Fields: []FieldSpec{
				{Name: "vault", Type: AccountType("stake_pool::Vault"), Mutable: true},
				{Name: "owner", Type: SignerType()},
			},
		},
	)

	adt := p.Adt("stake_pool::Deposit")
	require.NotNil(t, adt)
	assert.True(t, adt.Local)
	require.NotNil(t, adt.FirstVariant())
	assert.Len(t, adt.FirstVariant().Fields, 2)

	require.Len(t, p.TraitImpls, 1)
	assert.Equal(t, "anchor_lang::Accounts", p.TraitImpls[0].TraitName)

	require.Len(t, p.Items, 1)
	item := p.Items[0]
	assert.Contains(t, item.Name, "__client_accounts")
	assert.Contains(t, item.Name, "to_account_metas")
	require.NotNil(t, item.Body)
	// One block per field plus the return block.
	assert.Len(t, item.Body.Blocks, 3)
}

func TestBuildAnchorProgram_MetasBodyShape(t *testing.T) {
	p := BuildAnchorProgram("stake_pool",
		ContextSpec{
			Name: "Deposit",
			Fields: []FieldSpec{
				{Name: "vault", Type: AccountType("stake_pool::Vault"), Mutable: true},
			},
		},
	)

	body := p.Items[0].Body

	// First parameter references the context struct.
	decl := body.LocalDecl(1)
	require.NotNil(t, decl)
	require.Equal(t, mir.TypeRef, decl.Type.Kind)
	assert.Equal(t, "stake_pool::Deposit", decl.Type.Elem.Name)

	// Field block: copy of (*_1).field(0), then a constructor call.
	block := body.Blocks[0]
	last := block.LastStatement()
	require.NotNil(t, last)
	idx, ok := last.Assign.Rvalue.Use.Place.DerefField()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, mir.TermCall, block.Terminator.Kind)
}

func TestStaticByteArray(t *testing.T) {
	item := StaticByteArray(1, mir.ItemStatic, "ID", []byte{1, 2, 3})

	assert.Equal(t, mir.ItemStatic, item.Kind)
	require.NotNil(t, item.Body)
	require.Len(t, item.Body.Blocks, 1)

	stmt := item.Body.Blocks[0].Statements[0]
	require.Equal(t, mir.RvalueAggregate, stmt.Assign.Rvalue.Kind)
	assert.Len(t, stmt.Assign.Rvalue.Aggregate.Operands, 3)
}

func TestWrapperTypes(t *testing.T) {
	acc := AccountType("stake_pool::Vault")
	assert.Equal(t, mir.TypeAdt, acc.Kind)
	held := mir.TypeArg(acc.Args, 1)
	require.NotNil(t, held)
	assert.Equal(t, "stake_pool::Vault", held.Name)

	signer := SignerType()
	assert.Nil(t, mir.TypeArg(signer.Args, 1))
}
