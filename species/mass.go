package species

import (
	"fmt"

	"github.com/katalvlaran/sibeira/physconst"
)

// isotopeMass maps beam/plasma symbols to the isotope used for them [u].
var isotopeMass = map[string]float64{
	"D":  physconst.MassDeuterium,
	"Li": physconst.MassLithium7,
	"Na": physconst.MassSodium23,
	"K":  physconst.MassKalium39,
	"Rb": physconst.MassRubidium,
	"Cs": physconst.MassCaesium,
}

// Mass returns the rest mass of symbol in kg.
func Mass(symbol string) (float64, error) {
	u, ok := isotopeMass[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: no isotope mass for %q", ErrUnknownSpecies, symbol)
	}

	return u * physconst.AtomicMassConstant, nil
}

// DeuteriumMass is the plasma ion mass used as the charge-exchange target.
func DeuteriumMass() float64 {
	return physconst.MassDeuterium * physconst.AtomicMassConstant
}
