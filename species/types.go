package species

// Constants are the filled, immutable orbital constants of one species.
//
//   - B: binding energy of the ionised orbital [eV], > 0
//   - U: mean kinetic energy of the orbital electrons [eV], > 0
//   - N: electron occupation number, ≥ 1
//   - Q: dipole shape factor, in (0, 2]
//   - PrincipalN: the n of the BEB denominator t + (u+1)/n, ≥ 1
type Constants struct {
	Symbol     string
	Ionised    bool
	B          float64
	U          float64
	N          int
	Q          float64
	PrincipalN int
}

// row is one raw table entry. Pointer fields distinguish "absent" from zero.
type row struct {
	B                      *float64 `yaml:"B"`
	BRydberg               *float64 `yaml:"B_ry"`
	U                      *float64 `yaml:"U"`
	URydberg               *float64 `yaml:"U_ry"`
	N                      *int     `yaml:"N"`
	Q                      *float64 `yaml:"Q"`
	PrincipalN             *int     `yaml:"n"`
	PrincipalQuantumNumber *int     `yaml:"pqn"`
	Z                      *int     `yaml:"Z"`
}

// document mirrors species.yaml.
type document struct {
	Version int            `yaml:"version"`
	Neutral map[string]row `yaml:"neutral"`
	Ion     map[string]row `yaml:"ion"`
}
