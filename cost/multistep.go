package cost

// ThreeStep and FourStep are fixed low costs: spec.md §4.5 calls these
// groups "rare and unambiguous," so no contextual discount table applies.
const (
	ThreeStep = 4
	FourStep  = 6
)
