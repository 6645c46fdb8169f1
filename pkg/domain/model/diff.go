package model

// DiffPackages merges two lockfile package lists keyed by exact name into
// one record per name. It is pure and its output order is deterministic:
// names from old in their input order, then names appearing only in new in
// their input order. Duplicate names within one list are not expected from
// the parser; if they occur the first occurrence wins while seeding from
// old, and the new pass overwrites NewVersion without ever failing.
func DiffPackages(oldPkgs, newPkgs []Package) []PackageDiff {
	index := make(map[string]int, len(oldPkgs))
	diffs := make([]PackageDiff, 0, len(oldPkgs))

	for _, pkg := range oldPkgs {
		if _, ok := index[pkg.Name]; ok {
			continue
		}
		index[pkg.Name] = len(diffs)
		diffs = append(diffs, PackageDiff{Name: pkg.Name, OldVersion: pkg.Version})
	}

	for _, pkg := range newPkgs {
		if i, ok := index[pkg.Name]; ok {
			diffs[i].NewVersion = pkg.Version
			continue
		}
		index[pkg.Name] = len(diffs)
		diffs = append(diffs, PackageDiff{Name: pkg.Name, NewVersion: pkg.Version})
	}

	return diffs
}
