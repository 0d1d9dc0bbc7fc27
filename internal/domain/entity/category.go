package entity

// Category groups listings on the index page. The set is closed.
type Category string

const (
	CategoryTrending     Category = "Trending"
	CategoryRooms        Category = "Rooms"
	CategoryIconicCities Category = "Iconic Cities"
	CategoryMountains    Category = "Mountains"
	CategoryCastles      Category = "Castles"
	CategoryAmazingPools Category = "Amazing Pools"
	CategoryCamping      Category = "Camping"
	CategoryFarms        Category = "Farms"
	CategoryArctic       Category = "Arctic"
	CategoryDomes        Category = "Domes"
	CategoryBoats        Category = "Boats"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTrending,
	CategoryRooms,
	CategoryIconicCities,
	CategoryMountains,
	CategoryCastles,
	CategoryAmazingPools,
	CategoryCamping,
	CategoryFarms,
	CategoryArctic,
	CategoryDomes,
	CategoryBoats,
}

// Valid reports whether c is empty (uncategorized) or one of the known categories.
func (c Category) Valid() bool {
	if c == "" {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}
