// Package grand provides easy pseudo-random number generation.
//
// A Source wraps a 32-bit Mersenne Twister. Unless a seed is given, the
// engine is seeded from system entropy the first time output is
// requested, so a Source can still be given a fixed seed after
// construction without an unpredictable seed being consumed first.
//
//	r := grand.New()         // seeded with an unpredictable value on first use
//	r2 := grand.NewSeeded(7) // fixed seed gives a predictable sequence
//	r2.Seed(2)               // another way to seed
//
//	for k := 0; k < 5; k++ {
//		fmt.Println(r.Int(100)) // each in {0, 1, ..., 99}
//	}
//
//	if r.Coin() {
//		fmt.Println("HEADS")
//	}
//
//	b75 := r.Bool(0.75)  // true with 75% probability
//	d1 := r.Float64()    // in [0.0, 1.0)
//	d3 := r.Double(3.0)  // in [0.0, 3.0)
//	grand.Shuffle(r, xs) // shuffle a slice in place
//
// Integer, double and boolean sampling consume engine words exactly like
// std::uniform_int_distribution, std::uniform_real_distribution and
// std::bernoulli_distribution of libstdc++ driven by std::mt19937, so a
// seeded Source reproduces the values of the equivalent C++ program.
//
// A Source is not safe for concurrent use; give each goroutine its own.
// It is not suitable for cryptographic use.
package grand
