package db

import (
	"fmt"

	"github.com/oxhq/webcst/internal/source"
)

// PackageGraph is a directed graph over PackageIDs, each rooted at a FileID,
// with named dependency edges. Invariant: acyclic, enforced by DFS at
// insertion time (§3, §8.9).
type PackageGraph struct {
	roots map[PackageID]source.FileID
	edges map[PackageID]map[string]PackageID // dependent -> (dep name -> dependency)
}

// NewPackageGraph builds an empty graph.
func NewPackageGraph() *PackageGraph {
	return &PackageGraph{
		roots: make(map[PackageID]source.FileID),
		edges: make(map[PackageID]map[string]PackageID),
	}
}

// AddPackage registers pkg as rooted at file. Re-adding the same id with a
// different root replaces it; edges are unaffected.
func (g *PackageGraph) AddPackage(pkg PackageID, file source.FileID) {
	g.roots[pkg] = file
	if g.edges[pkg] == nil {
		g.edges[pkg] = make(map[string]PackageID)
	}
}

// AddDependency records that pkg depends on dep under name. Returns an error
// if and only if adding the edge would create a cycle (§8.9) — the edge is
// not added in that case.
func (g *PackageGraph) AddDependency(pkg PackageID, name string, dep PackageID) error {
	if g.edges[pkg] == nil {
		g.edges[pkg] = make(map[string]PackageID)
	}
	if g.reaches(dep, pkg) {
		return fmt.Errorf("db: adding dependency %d -(%s)-> %d would create a cycle", pkg, name, dep)
	}
	g.edges[pkg][name] = dep
	return nil
}

// reaches reports whether a path exists from -> to over the current edges,
// via depth-first search.
func (g *PackageGraph) reaches(from, to PackageID) bool {
	if from == to {
		return true
	}
	visited := make(map[PackageID]bool)
	var dfs func(PackageID) bool
	dfs = func(n PackageID) bool {
		if visited[n] {
			return false
		}
		visited[n] = true
		for _, dep := range g.edges[n] {
			if dep == to || dfs(dep) {
				return true
			}
		}
		return false
	}
	return dfs(from)
}

// Dependencies returns pkg's outgoing edges as name -> PackageID.
func (g *PackageGraph) Dependencies(pkg PackageID) map[string]PackageID {
	out := make(map[string]PackageID, len(g.edges[pkg]))
	for name, dep := range g.edges[pkg] {
		out[name] = dep
	}
	return out
}

// Root returns the FileID pkg is rooted at.
func (g *PackageGraph) Root(pkg PackageID) (source.FileID, bool) {
	f, ok := g.roots[pkg]
	return f, ok
}
