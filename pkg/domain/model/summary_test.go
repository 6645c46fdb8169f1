package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/lockdiff/pkg/domain/model"
)

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name  string
		diffs []model.PackageDiff
		want  string
	}{
		{
			name:  "no records",
			diffs: nil,
			want:  "",
		},
		{
			name: "all unchanged",
			diffs: []model.PackageDiff{
				{Name: "requests", OldVersion: "2.0", NewVersion: "2.0"},
				{Name: "six", OldVersion: "1.0", NewVersion: "1.0"},
			},
			want: "",
		},
		{
			name: "single update",
			diffs: []model.PackageDiff{
				{Name: "requests", OldVersion: "2.0", NewVersion: "2.1"},
			},
			want: "### Detected 1 changes to dependencies in Poetry lockfile\n\n" +
				"Updated **requests** (2.0 -> 2.1)" +
				"\n\n*(0 added, 0 removed, 1 updated, 0 not changed)*",
		},
		{
			name: "single addition",
			diffs: []model.PackageDiff{
				{Name: "click", NewVersion: "8.0"},
			},
			want: "### Detected 1 changes to dependencies in Poetry lockfile\n\n" +
				"Added **click** (8.0)" +
				"\n\n*(1 added, 0 removed, 0 updated, 0 not changed)*",
		},
		{
			name: "single removal",
			diffs: []model.PackageDiff{
				{Name: "six", OldVersion: "1.0"},
			},
			want: "### Detected 1 changes to dependencies in Poetry lockfile\n\n" +
				"Removed **six** (1.0)" +
				"\n\n*(0 added, 1 removed, 0 updated, 0 not changed)*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.FormatSummary(tt.diffs)
			if err != nil {
				t.Fatalf("FormatSummary() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSummary_GroupingAndOrder(t *testing.T) {
	diffs := []model.PackageDiff{
		{Name: "zlib", NewVersion: "1.0"},
		{Name: "requests", OldVersion: "2.0", NewVersion: "2.1"},
		{Name: "click", OldVersion: "8.0", NewVersion: "8.0"},
		{Name: "six", OldVersion: "1.0"},
		{Name: "aiohttp", NewVersion: "3.8"},
	}

	got, err := model.FormatSummary(diffs)
	if err != nil {
		t.Fatalf("FormatSummary() error = %v", err)
	}

	want := "### Detected 4 changes to dependencies in Poetry lockfile\n\n" +
		"Added **aiohttp** (3.8)\n" +
		"Added **zlib** (1.0)\n" +
		"Removed **six** (1.0)\n" +
		"Updated **requests** (2.0 -> 2.1)" +
		"\n\n*(2 added, 1 removed, 1 updated, 1 not changed)*"
	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}

	if strings.Contains(got, "Not changed") {
		t.Error("unchanged packages must not appear as summary lines")
	}
}

func TestFormatSummary_CorruptRecord(t *testing.T) {
	diffs := []model.PackageDiff{
		{Name: "requests", OldVersion: "2.0", NewVersion: "2.1"},
		{Name: "ghost"},
	}

	if _, err := model.FormatSummary(diffs); err == nil {
		t.Error("FormatSummary() expected error for record without any version")
	}
}
