package domain

// DriftKind classifies a single working-tree change.
type DriftKind string

const (
	// DriftModified marks a tracked file whose content changed.
	DriftModified DriftKind = "modified"
	// DriftAdded marks a file staged as new.
	DriftAdded DriftKind = "added"
	// DriftDeleted marks a tracked file that was removed.
	DriftDeleted DriftKind = "deleted"
	// DriftRenamed marks a tracked file that was renamed.
	DriftRenamed DriftKind = "renamed"
	// DriftUntracked marks a file git does not know about.
	DriftUntracked DriftKind = "untracked"
)

// DriftEntry is one changed or untracked path in the working tree.
type DriftEntry struct {
	Kind DriftKind
	Path string
}

// Drift is the set of working-tree changes found after a resolver run.
// A non-empty drift after a verify run means the checked-in pins do not
// match what the resolver produces.
type Drift struct {
	Entries []DriftEntry
}

// Dirty reports whether any change was found.
func (d Drift) Dirty() bool {
	return len(d.Entries) > 0
}

// Count returns the number of changed or untracked paths.
func (d Drift) Count() int {
	return len(d.Entries)
}

// Paths returns the affected paths in porcelain output order.
func (d Drift) Paths() []string {
	paths := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		paths[i] = e.Path
	}
	return paths
}
