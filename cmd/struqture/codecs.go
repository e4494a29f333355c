package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/mixed"
	"github.com/katalvlaran/struqture/spins"
)

// codec binds one container type to its v1 migration and its threshold
// filter.
type codec struct {
	convert  func(data []byte) (any, error)
	truncate func(data []byte, threshold float64) (any, error)
}

func makeCodec[T any, PT interface {
	*T
	json.Unmarshaler
}](fromV1 func([]byte) (PT, error), trunc func(PT, float64) PT) codec {
	return codec{
		convert: func(data []byte) (any, error) { return fromV1(data) },
		truncate: func(data []byte, threshold float64) (any, error) {
			var v T
			if err := PT(&v).UnmarshalJSON(data); err != nil {
				return nil, err
			}
			return trunc(PT(&v), threshold), nil
		},
	}
}

var codecs = map[string]codec{
	"spin-operator":       makeCodec(spins.PauliOperatorFromJSON1, (*spins.PauliOperator).Truncate),
	"spin-hamiltonian":    makeCodec(spins.PauliHamiltonianFromJSON1, (*spins.PauliHamiltonian).Truncate),
	"spin-noise":          makeCodec(spins.PauliLindbladNoiseOperatorFromJSON1, (*spins.PauliLindbladNoiseOperator).Truncate),
	"spin-open-system":    makeCodec(spins.PauliLindbladOpenSystemFromJSON1, (*spins.PauliLindbladOpenSystem).Truncate),
	"boson-operator":      makeCodec(bosons.BosonOperatorFromJSON1, (*bosons.BosonOperator).Truncate),
	"boson-hamiltonian":   makeCodec(bosons.BosonHamiltonianFromJSON1, (*bosons.BosonHamiltonian).Truncate),
	"boson-noise":         makeCodec(bosons.BosonLindbladNoiseOperatorFromJSON1, (*bosons.BosonLindbladNoiseOperator).Truncate),
	"boson-open-system":   makeCodec(bosons.BosonLindbladOpenSystemFromJSON1, (*bosons.BosonLindbladOpenSystem).Truncate),
	"fermion-operator":    makeCodec(fermions.FermionOperatorFromJSON1, (*fermions.FermionOperator).Truncate),
	"fermion-hamiltonian": makeCodec(fermions.FermionHamiltonianFromJSON1, (*fermions.FermionHamiltonian).Truncate),
	"fermion-noise":       makeCodec(fermions.FermionLindbladNoiseOperatorFromJSON1, (*fermions.FermionLindbladNoiseOperator).Truncate),
	"fermion-open-system": makeCodec(fermions.FermionLindbladOpenSystemFromJSON1, (*fermions.FermionLindbladOpenSystem).Truncate),
	"mixed-operator":      makeCodec(mixed.MixedOperatorFromJSON1, (*mixed.MixedOperator).Truncate),
	"mixed-hamiltonian":   makeCodec(mixed.MixedHamiltonianFromJSON1, (*mixed.MixedHamiltonian).Truncate),
	"mixed-noise":         makeCodec(mixed.MixedLindbladNoiseOperatorFromJSON1, (*mixed.MixedLindbladNoiseOperator).Truncate),
	"mixed-open-system":   makeCodec(mixed.MixedLindbladOpenSystemFromJSON1, (*mixed.MixedLindbladOpenSystem).Truncate),
}

func codecFor(name string) (codec, error) {
	c, ok := codecs[name]
	if !ok {
		names := make([]string, 0, len(codecs))
		for n := range codecs {
			names = append(names, n)
		}
		sort.Strings(names)
		return codec{}, fmt.Errorf("unknown type %q (one of %s)", name, strings.Join(names, ", "))
	}
	return c, nil
}
