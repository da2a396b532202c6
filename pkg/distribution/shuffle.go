package distribution

// Shuffle pseudo-randomizes the order of n elements using swap, following
// the libstdc++ std::shuffle algorithm. When the generator range is at
// least n*n, swap positions for two successive elements are produced from
// a single uniform draw.
func Shuffle(g Generator, n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	urngrange := uint64(g.Max()) - uint64(g.Min())
	urange := uint64(n)

	if urngrange/urange >= urange {
		i := 1
		// An even element count leaves an odd number of swaps; do one up front.
		if urange%2 == 0 {
			swap(i, int(UniformInt(g, uint64(0), 1)))
			i++
		}
		for i != n {
			swapRange := uint64(i) + 1
			x := UniformInt(g, uint64(0), swapRange*(swapRange+1)-1)
			swap(i, int(x/(swapRange+1)))
			i++
			swap(i, int(x%(swapRange+1)))
			i++
		}
		return
	}

	for i := 1; i < n; i++ {
		swap(i, int(UniformInt(g, uint64(0), uint64(i))))
	}
}
