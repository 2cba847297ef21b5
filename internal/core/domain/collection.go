package domain

// CollectionKind distinguishes fast partial collections from full ones.
type CollectionKind uint8

const (
	// CollectionMinor is a partial collection of short-lived objects.
	CollectionMinor CollectionKind = iota
	// CollectionMajor performs full reachability analysis and reclaims long-lived objects.
	CollectionMajor
)

// String returns the name of the collection kind.
func (k CollectionKind) String() string {
	if k == CollectionMajor {
		return "major"
	}
	return "minor"
}

// IsMajor reports whether k is a full collection.
func (k CollectionKind) IsMajor() bool {
	return k == CollectionMajor
}

// CollectionReport summarizes one collection cycle.
type CollectionReport struct {
	Kind CollectionKind
	// Epoch is the sequence number of the collection, starting at 1.
	Epoch uint64
	// RootsVisited counts the references presented by root holders.
	RootsVisited int
	// Relocated counts the objects moved during the cycle.
	Relocated int
}
