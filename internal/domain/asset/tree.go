package asset

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// ReplaceField returns a new forest in which the asset with targetID has the
// edited field replaced. The search is depth-first; by the unique-id
// invariant at most one asset matches. Ancestors of the modified asset get
// new copies, unrelated subtrees are shared with the input, and the input
// forest is never mutated. When no asset matches, the input slice is
// returned unchanged so callers may short-circuit on reference equality.
func ReplaceField(roots []Asset, targetID string, edit Edit) []Asset {
	updated, changed := replaceIn(roots, targetID, edit)
	if !changed {
		return roots
	}
	return updated
}

func replaceIn(list []Asset, targetID string, edit Edit) ([]Asset, bool) {
	for i := range list {
		if list[i].ID == targetID {
			out := append([]Asset(nil), list...)
			edit.apply(&out[i])
			return out, true
		}
		if len(list[i].Children) == 0 {
			continue
		}
		if children, changed := replaceIn(list[i].Children, targetID, edit); changed {
			out := append([]Asset(nil), list...)
			out[i].Children = children
			return out, true
		}
	}
	return list, false
}

// PrependRoot returns a new forest with a as the first root followed by all
// previous roots in their original order. No subtree is touched. The caller
// is responsible for supplying a collection-unique id; duplicates are not
// detected here and make later lookups first-match.
func PrependRoot(roots []Asset, a Asset) []Asset {
	out := make([]Asset, 0, len(roots)+1)
	out = append(out, a)
	return append(out, roots...)
}

// Find returns the asset with the given id at any depth.
func Find(roots []Asset, id string) (Asset, bool) {
	for i := range roots {
		if roots[i].ID == id {
			return roots[i], true
		}
		if a, ok := Find(roots[i].Children, id); ok {
			return a, true
		}
	}
	return Asset{}, false
}

// RemoveByID returns a new forest without the assets whose ids are listed.
// Removing an asset removes its whole subtree. Unknown ids are ignored.
func RemoveByID(roots []Asset, ids ...string) []Asset {
	if len(ids) == 0 {
		return roots
	}
	drop := mapset.NewThreadUnsafeSet(ids...)
	return removeIn(roots, drop)
}

func removeIn(list []Asset, drop mapset.Set[string]) []Asset {
	out := make([]Asset, 0, len(list))
	for i := range list {
		if drop.Contains(list[i].ID) {
			continue
		}
		a := list[i]
		if len(a.Children) > 0 {
			a.Children = removeIn(a.Children, drop)
		}
		out = append(out, a)
	}
	return out
}

// Walk visits every asset depth-first, parents before children, passing the
// nesting depth (roots are depth 0). Returning false stops the walk.
func Walk(roots []Asset, fn func(a Asset, depth int) bool) {
	walk(roots, 0, fn)
}

func walk(list []Asset, depth int, fn func(a Asset, depth int) bool) bool {
	for i := range list {
		if !fn(list[i], depth) {
			return false
		}
		if !walk(list[i].Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the total number of assets at all depths.
func Count(roots []Asset) int {
	n := 0
	Walk(roots, func(Asset, int) bool {
		n++
		return true
	})
	return n
}

// Categories returns the sorted set of distinct category values across the
// whole forest. Empty categories are skipped.
func Categories(roots []Asset) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	Walk(roots, func(a Asset, _ int) bool {
		if a.Category != "" {
			seen.Add(a.Category)
		}
		return true
	})
	out := seen.ToSlice()
	sort.Strings(out)
	return out
}
