// Package spline fits the interpolants used to replace expensive rate
// integrals at run time.
//
// Cubic is a not-a-knot cubic spline: the third derivative is continuous at
// the second and the next-to-last knot, so four points give the single cubic
// through them. Outside the knot range the end pieces are extended, which is
// what makes the rate ladder usable below its first and above its last
// temperature.
//
// LogLog fits a Cubic in (ln x, ln y) space and evaluates exp(S(ln x)), with
// the convention LogLog(0) = 0 (zero temperature, zero rate).
//
// Both types are plain data (exported fields with json/yaml tags), so a
// profile database can store and restore them exactly.
//
// Usage:
//
//	s, err := spline.NewLogLog([]float64{10, 20, 50, 100}, []float64{1, 3, 5, 10})
//	y := s.Evaluate(11)          // ≈ 1.2481
//	ys := s.EvaluateAll(temps)   // vectorised
package spline
