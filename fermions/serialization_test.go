package fermions_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/schema"
)

// TestFermionOperator_RoundTrips: JSON and msgpack envelopes decode back to
// an equal operator, string keys included.
func TestFermionOperator_RoundTrips(t *testing.T) {
	op := fermions.NewFermionOperator(fermions.WithNumberModes(3))
	require.NoError(t, op.Add(mustFermion(t, []int{0, 1}, []int{2}), coeff.NewComplex(0.5, -1)))
	require.NoError(t, op.Add(mustFermion(t, nil, []int{0}), coeff.FromFloat(coeff.Symbol("g"))))

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"c0c1a2"`)
	assert.Contains(t, string(data), `"type_name":"FermionOperator"`)

	var back fermions.FermionOperator
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, coeff.NewComplex(0.5, -1), back.Get(mustFermion(t, []int{0, 1}, []int{2})))
	bound, ok := back.DeclaredNumberModes()
	require.True(t, ok)
	assert.Equal(t, 3, bound)

	bin, err := op.MarshalBinary()
	require.NoError(t, err)
	var backBin fermions.FermionOperator
	require.NoError(t, backBin.UnmarshalBinary(bin))
	assert.Equal(t, 2, backBin.Len())
	assert.Equal(t, coeff.Symbol("g"), backBin.Get(mustFermion(t, nil, []int{0})).Re)
}

// TestFermionHamiltonian_RoundTrips keeps Hermitian keys and complex values.
func TestFermionHamiltonian_RoundTrips(t *testing.T) {
	h := fermions.NewFermionHamiltonian()
	_, err := h.Set(mustHermitian(t, []int{0}, []int{1}), coeff.NewComplex(1, 2))
	require.NoError(t, err)

	data, err := json.Marshal(h)
	require.NoError(t, err)
	var back fermions.FermionHamiltonian
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, coeff.NewComplex(1, 2), back.Get(mustHermitian(t, []int{0}, []int{1})))

	bin, err := h.MarshalBinary()
	require.NoError(t, err)
	var backBin fermions.FermionHamiltonian
	require.NoError(t, backBin.UnmarshalBinary(bin))
	assert.Equal(t, 1, backBin.Len())
}

// TestFermionContainer_TypeNameGuard: payloads do not cross-decode between
// container types.
func TestFermionContainer_TypeNameGuard(t *testing.T) {
	op := fermions.NewFermionOperator()
	require.NoError(t, op.Add(mustFermion(t, []int{0}, []int{0}), coeff.NewComplex(1, 0)))

	data, err := json.Marshal(op)
	require.NoError(t, err)

	var h fermions.FermionHamiltonian
	err = json.Unmarshal(data, &h)
	assert.ErrorIs(t, err, schema.ErrTypeMismatch)
}

// TestFermionLindbladOpenSystem_RoundTrip nests both halves.
func TestFermionLindbladOpenSystem_RoundTrip(t *testing.T) {
	os := fermions.NewFermionLindbladOpenSystem(fermions.WithNumberModes(2))
	_, err := os.System().Set(mustHermitian(t, []int{0}, []int{0}), coeff.NewComplex(1, 0))
	require.NoError(t, err)
	f0 := mustFermion(t, nil, []int{0})
	_, err = os.Noise().Set(f0, f0, coeff.NewComplex(0.1, 0))
	require.NoError(t, err)

	data, err := json.Marshal(os)
	require.NoError(t, err)
	var back fermions.FermionLindbladOpenSystem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, coeff.NewComplex(1, 0), back.System().Get(mustHermitian(t, []int{0}, []int{0})))
	assert.Equal(t, coeff.NewComplex(0.1, 0), back.Noise().Get(f0, f0))
}

// TestFermionOperatorFromJSON1 migrates bare and wrapped 1.x payloads.
func TestFermionOperatorFromJSON1(t *testing.T) {
	bare := `{
		"items": [["c0a1", 1.0, 0.5]],
		"_struqture_version": {"major_version": 1, "minor_version": 4}
	}`
	op, err := fermions.FermionOperatorFromJSON1([]byte(bare))
	require.NoError(t, err)
	assert.Equal(t, coeff.NewComplex(1, 0.5), op.Get(mustFermion(t, []int{0}, []int{1})))

	wrapped := `{"number_modes": 2, "operator": ` + bare + `}`
	op, err = fermions.FermionOperatorFromJSON1([]byte(wrapped))
	require.NoError(t, err)
	bound, ok := op.DeclaredNumberModes()
	require.True(t, ok)
	assert.Equal(t, 2, bound)

	_, err = fermions.FermionOperatorFromJSON1([]byte(`{"items": []}`))
	assert.ErrorIs(t, err, schema.ErrNotV1)
}

// TestFermionHamiltonianFromJSON1 handles the hamiltonian system wrapper.
func TestFermionHamiltonianFromJSON1(t *testing.T) {
	payload := `{"number_modes": 3, "hamiltonian": {
		"items": [["c0a1", 0.5, 0.0]],
		"_struqture_version": {"major_version": 1, "minor_version": 0}
	}}`
	h, err := fermions.FermionHamiltonianFromJSON1([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, coeff.NewComplex(0.5, 0), h.Get(mustHermitian(t, []int{0}, []int{1})))
}
