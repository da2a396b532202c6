// Package distribution provides uniform random bit generator based
// distributions whose output matches the GNU C++ standard library
// (libstdc++) for the same sequence of generator words.
//
// Any type with Min, Max and Uint32 methods can drive the functions in
// this package, including *mt19937.Engine and *grand.Source.
package distribution

// Generator is a uniform random bit generator: each call to Uint32
// returns a value uniformly distributed over [Min(), Max()].
type Generator interface {
	Min() uint32
	Max() uint32
	Uint32() uint32
}
