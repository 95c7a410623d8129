package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/graph-guard/ggdict/pkg/dictionary"
	"github.com/zeebo/xxh3"
)

// point supports == only.
type point struct{ X, Y int }

// version supports == and ordering.
type version struct{ Major, Minor int }

func (v version) Less(x version) bool {
	if v.Major == x.Major {
		return v.Minor < x.Minor
	}
	return v.Major < x.Major
}

// label supports ==, ordering and hashing.
type label string

func (l label) Less(x label) bool { return l < x }

func (l label) Hash() uint64 { return xxh3.HashString(string(l)) }

func printSelection(w io.Writer) {
	for _, s := range []struct {
		Type    string
		Backend dictionary.Backend
	}{
		{"int", dictionary.Select[int]()},
		{"float64", dictionary.Select[float64]()},
		{"bool", dictionary.Select[bool]()},
		{"string", dictionary.Select[string]()},
		{"uuid.UUID", dictionary.Select[uuid.UUID]()},
		{"point (==)", dictionary.Select[point]()},
		{"version (==, Less)", dictionary.Select[version]()},
		{"label (==, Less, Hash)", dictionary.Select[label]()},
	} {
		fmt.Fprintf(w, "%s: %s\n", s.Type, s.Backend)
	}
}
