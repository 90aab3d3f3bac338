// Package constraint implements the hard/soft constraint evaluator (§4.3):
// travel-edge, role-order, family-duplication, and late-spike checks, plus
// the family classifier they share.
package constraint

import "strings"

// Family names the five tracked venue families; anything else classifies as
// "other". The classifier is spec-locked to this table (§9 open question):
// no substring matching outside these families is permitted.
const (
	FamilyFood      = "food"
	FamilyNightlife = "nightlife"
	FamilyCulture   = "culture"
	FamilyOutdoors  = "outdoors"
	FamilyDessert   = "dessert"
	FamilyOther     = "other"
)

var typeToFamily = map[string]string{
	"restaurant":        FamilyFood,
	"meal_takeaway":     FamilyFood,
	"meal_delivery":     FamilyFood,
	"food":              FamilyFood,
	"diner":             FamilyFood,
	"steak_house":       FamilyFood,
	"pizza_restaurant":  FamilyFood,
	"sandwich_shop":     FamilyFood,

	"bar":        FamilyNightlife,
	"night_club": FamilyNightlife,
	"pub":        FamilyNightlife,
	"casino":     FamilyNightlife,
	"wine_bar":   FamilyNightlife,

	"museum":           FamilyCulture,
	"art_gallery":      FamilyCulture,
	"tourist_attraction": FamilyCulture,
	"church":           FamilyCulture,
	"hindu_temple":     FamilyCulture,
	"mosque":           FamilyCulture,
	"synagogue":        FamilyCulture,
	"library":          FamilyCulture,
	"theater":          FamilyCulture,
	"movie_theater":    FamilyCulture,
	"performing_arts_theater": FamilyCulture,

	"park":            FamilyOutdoors,
	"zoo":             FamilyOutdoors,
	"hiking_area":     FamilyOutdoors,
	"campground":      FamilyOutdoors,
	"natural_feature": FamilyOutdoors,
	"beach":           FamilyOutdoors,
	"botanical_garden": FamilyOutdoors,

	"bakery":          FamilyDessert,
	"ice_cream_shop":  FamilyDessert,
	"dessert_shop":    FamilyDessert,
	"cafe":            FamilyDessert,
	"coffee_shop":     FamilyDessert,
}

// nameHeuristics is the fallback keyword table used when a stop carries no
// recognized placeLite.types. Kept separate from typeToFamily so both
// tables stay independently auditable against the canonical family list.
var nameHeuristics = []struct {
	keyword string
	family  string
}{
	{"museum", FamilyCulture},
	{"gallery", FamilyCulture},
	{"theater", FamilyCulture},
	{"theatre", FamilyCulture},
	{"temple", FamilyCulture},
	{"park", FamilyOutdoors},
	{"garden", FamilyOutdoors},
	{"trail", FamilyOutdoors},
	{"beach", FamilyOutdoors},
	{"bakery", FamilyDessert},
	{"dessert", FamilyDessert},
	{"ice cream", FamilyDessert},
	{"gelato", FamilyDessert},
	{"bar", FamilyNightlife},
	{"club", FamilyNightlife},
	{"lounge", FamilyNightlife},
	{"pub", FamilyNightlife},
	{"restaurant", FamilyFood},
	{"bistro", FamilyFood},
	{"grill", FamilyFood},
	{"kitchen", FamilyFood},
	{"cafe", FamilyDessert},
}

// ClassifyFamily returns the venue family for a stop's types and, failing
// that, its name. It never returns a value outside the six named families.
func ClassifyFamily(types []string, name string) string {
	for _, t := range types {
		if family, ok := typeToFamily[strings.ToLower(t)]; ok {
			return family
		}
	}
	lowerName := strings.ToLower(name)
	for _, h := range nameHeuristics {
		if strings.Contains(lowerName, h.keyword) {
			return h.family
		}
	}
	return FamilyOther
}
