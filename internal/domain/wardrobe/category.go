package wardrobe

// ExclusiveGroupID names a set of clothing types from which at most one item
// may appear in a single outfit.
type ExclusiveGroupID string

const (
	GroupTops    ExclusiveGroupID = "tops"
	GroupBottoms ExclusiveGroupID = "bottoms"
)

var exclusiveGroups = map[ClothingType]ExclusiveGroupID{
	TypeShirt:  GroupTops,
	TypeTShirt: GroupTops,
	TypePants:  GroupBottoms,
	TypeJeans:  GroupBottoms,
	TypeShorts: GroupBottoms,
	TypeSkirt:  GroupBottoms,
}

// ExclusiveGroup resolves the mutually exclusive group for a clothing type.
// Layers, dresses, shoes and accessories belong to no group.
func ExclusiveGroup(t ClothingType) (ExclusiveGroupID, bool) {
	group, ok := exclusiveGroups[t]
	return group, ok
}

// IsLayer reports whether the type is an insulating layer. Layers are not
// mutually exclusive with each other or with tops and bottoms.
func IsLayer(t ClothingType) bool {
	return t == TypeSweater || t == TypeJacket || t == TypeCoat
}

// DedupeByExclusiveGroup retains at most one item per exclusive group,
// first seen wins. Items outside any group pass through unchanged and input
// order is preserved, so the result is deterministic for a given input and
// idempotent.
func DedupeByExclusiveGroup(items []ClothingItem) []ClothingItem {
	taken := make(map[ExclusiveGroupID]struct{}, 2)
	out := make([]ClothingItem, 0, len(items))
	for _, item := range items {
		group, ok := ExclusiveGroup(item.Type)
		if ok {
			if _, dup := taken[group]; dup {
				continue
			}
			taken[group] = struct{}{}
		}
		out = append(out, item)
	}
	return out
}
