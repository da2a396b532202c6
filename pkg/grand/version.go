package grand

const (
	// Version is the semantic version of this package.
	Version = "1.1.1"
	// PackageVersion encodes Version as a number that increases with each
	// release: 1 01 01 means 1.1.1.
	PackageVersion = 10101
)
