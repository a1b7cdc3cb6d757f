package sources

// Leaf is one bookmark extracted from an export, before any validation.
type Leaf struct {
	Title        string
	URI          string
	LastModified int64 // epoch microseconds, Firefox convention; 0 if absent
}

// Source yields candidate bookmarks in a stable order, plus warnings for
// nodes it had to skip.
type Source interface {
	Leaves() ([]Leaf, []string)
}
