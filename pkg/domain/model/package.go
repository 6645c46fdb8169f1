package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Package is one dependency pinned by a lockfile: the canonical package name
// and its resolved version. Versions are opaque display strings; only
// equality and presence matter, no ordering is ever applied.
type Package struct {
	Name    string
	Version string
}

// PackageDiff is the state of one package name across the two lockfile
// revisions of a diff run. An empty version string means the package is
// absent on that side; the lockfile parser rejects entries with empty
// versions, so the encoding is unambiguous.
type PackageDiff struct {
	Name       string
	OldVersion string
	NewVersion string
}

// Unchanged reports whether the package is present with the same version on
// both sides (or absent from both, which DiffPackages never produces).
func (d PackageDiff) Unchanged() bool {
	return d.OldVersion == d.NewVersion
}

// Changed reports whether anything about the package differs between sides.
func (d PackageDiff) Changed() bool {
	return !d.Unchanged()
}

// Updated reports whether the package is present on both sides with
// different versions.
func (d PackageDiff) Updated() bool {
	return d.OldVersion != "" && d.NewVersion != "" && d.Changed()
}

// Added reports whether the package appears only in the new lockfile.
func (d PackageDiff) Added() bool {
	return d.OldVersion == "" && d.NewVersion != ""
}

// Removed reports whether the package appears only in the old lockfile.
func (d PackageDiff) Removed() bool {
	return d.OldVersion != "" && d.NewVersion == ""
}

// SummaryLine renders the comment line for this record. A record with
// neither version set cannot come out of DiffPackages; encountering one
// means the diff run is corrupted, which is surfaced as an error rather
// than skipped.
func (d PackageDiff) SummaryLine() (string, error) {
	switch {
	case d.Updated():
		return fmt.Sprintf("Updated **%s** (%s -> %s)", d.Name, d.OldVersion, d.NewVersion), nil
	case d.Added():
		return fmt.Sprintf("Added **%s** (%s)", d.Name, d.NewVersion), nil
	case d.Removed():
		return fmt.Sprintf("Removed **%s** (%s)", d.Name, d.OldVersion), nil
	}

	if d.NewVersion == "" {
		return "", goerr.New("package diff has neither old nor new version", goerr.V("name", d.Name))
	}

	return fmt.Sprintf("Not changed **%s** (%s)", d.Name, d.NewVersion), nil
}
