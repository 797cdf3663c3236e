// Package config loads the run configuration of the rate-profile tools from
// YAML and turns it into options for the quadrature, integrator, profile and
// profiledb packages.
//
// Layering, lowest first: Default(), the YAML file, SIBEIRA_* environment
// variables. A minimal file:
//
//	reference_energies: [10, 20, 50, 100, 200, 500, 1000]
//	double_term_weight: 2
//	quadrature:
//	  rel_tol: 1.0e-8
//	database:
//	  backend: sqlite
//	  directory: ./data
//	tabata:
//	  single: ./data/tabata_single.tsv
//	  double: ./data/tabata_double.tsv
//	logging:
//	  level: debug
package config
