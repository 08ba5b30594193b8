package variant

// Scope pairs a directory of an instance tree with the template directory it
// is rendered from. Both are slash-separated relative paths.
type Scope struct {
	Instance string
	Template string
}

// Layout describes how an instance tree maps onto its template tree.
type Layout struct {
	Scopes []Scope
	// FixtureDir is the per-scope fixture directory copied byte-for-byte.
	FixtureDir string
}

// DefaultLayout returns the module layout: sources at the module root, a
// tests module and a Go examples module.
func DefaultLayout() Layout {
	return Layout{
		Scopes: []Scope{
			{Instance: ".", Template: "module"},
			{Instance: "tests", Template: "tests"},
			{Instance: "examples/go", Template: "examples/go"},
		},
		FixtureDir: "testdata",
	}
}
