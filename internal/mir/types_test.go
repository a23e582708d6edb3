package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortName(t *testing.T) {
	assert.Equal(t, "DistributeRewards",
		ShortName("distribute::__client_accounts_distribute::DistributeRewards"))
	assert.Equal(t, "Vault", ShortName("Vault"))
	assert.Equal(t, "", ShortName(""))
}

func TestTypeArg(t *testing.T) {
	held := &Type{Kind: TypeAdt, Name: "Vault"}
	args := []GenericArg{
		{Kind: ArgLifetime},
		{Kind: ArgType, Type: held},
	}

	assert.Nil(t, TypeArg(args, 0)) // lifetime, not a type
	assert.Equal(t, held, TypeArg(args, 1))
	assert.Nil(t, TypeArg(args, 2)) // out of range
	assert.Nil(t, TypeArg(args, -1))
	assert.Nil(t, TypeArg(nil, 0))
}

func TestSubstKey_Empty(t *testing.T) {
	assert.Equal(t, "", SubstKey(nil))
	assert.Equal(t, "", SubstKey([]GenericArg{}))
}

func TestSubstKey_Canonical(t *testing.T) {
	args := []GenericArg{
		{Kind: ArgLifetime},
		{Kind: ArgType, Type: &Type{Kind: TypeAdt, Name: "Vault"}},
		{Kind: ArgConst},
	}
	assert.Equal(t, "<'_,Vault,const>", SubstKey(args))
}

func TestSubstKey_NestedTypes(t *testing.T) {
	inner := &Type{Kind: TypeAdt, Name: "Vault"}
	args := []GenericArg{
		{Kind: ArgType, Type: &Type{
			Kind: TypeAdt,
			Name: "Account",
			Args: []GenericArg{
				{Kind: ArgLifetime},
				{Kind: ArgType, Type: inner},
			},
		}},
		{Kind: ArgType, Type: &Type{Kind: TypeRef, Mutable: true, Elem: inner}},
		{Kind: ArgType, Type: &Type{Kind: TypeUint, Width: "u64"}},
	}
	assert.Equal(t, "<Account<'_,Vault>,&mut Vault,u64>", SubstKey(args))
}

func TestSubstKey_DistinguishesSubstitutions(t *testing.T) {
	a := SubstKey([]GenericArg{{Kind: ArgType, Type: &Type{Kind: TypeAdt, Name: "Vault"}}})
	b := SubstKey([]GenericArg{{Kind: ArgType, Type: &Type{Kind: TypeAdt, Name: "Pool"}}})
	assert.NotEqual(t, a, b)
}

func TestSubstKey_NilType(t *testing.T) {
	assert.Equal(t, "<_>", SubstKey([]GenericArg{{Kind: ArgType}}))
}
