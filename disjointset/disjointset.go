package disjointset

// Forest is a Disjoint-Set Forest over the elements 0..Len()-1.
// The zero value is an empty forest.
type Forest struct {
	set  []int // negative: root with size -set[x]; otherwise parent index
	sets int   // number of disjoint sets
}

// New returns a Forest of n singleton sets {0}, {1}, ..., {n-1}.
// Complexity: O(n).
func New(n int) *Forest {
	set := make([]int, n)
	for i := range set {
		set[i] = -1 // every element starts as the root of a set of size 1
	}

	return &Forest{set: set, sets: n}
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.set) }

// Sets returns the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the root element of the tree representing the set containing x.
//
// Steps:
//  1. Walk parent links until a root (negative slot) is reached.
//  2. Walk the same path again, pointing every visited element at the root.
//
// Complexity: amortized O(α(n)).
func (f *Forest) Find(x int) int {
	root := x
	for f.set[root] >= 0 {
		root = f.set[root]
	}

	// Second pass: compress the path x → ... → root.
	for x != root {
		next := f.set[x]
		f.set[x] = root
		x = next
	}

	return root
}

// Union joins the sets containing a and b. It reports whether a merge
// happened; false means a and b were already in the same set.
//
// The smaller set is attached under the root of the larger one. On equal
// sizes the root of b goes under the root of a.
// Complexity: amortized O(α(n)).
func (f *Forest) Union(a, b int) bool {
	aRoot, bRoot := f.Find(a), f.Find(b)
	if aRoot == bRoot {
		return false
	}

	// Sizes are stored negated, so "<=" means size(a) >= size(b).
	if f.set[aRoot] <= f.set[bRoot] {
		f.set[aRoot] += f.set[bRoot]
		f.set[bRoot] = aRoot
	} else {
		f.set[bRoot] += f.set[aRoot]
		f.set[aRoot] = bRoot
	}
	f.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Size returns the number of elements in the set containing x.
func (f *Forest) Size(x int) int {
	return -f.set[f.Find(x)]
}
