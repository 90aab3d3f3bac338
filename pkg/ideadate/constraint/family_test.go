package constraint

import "testing"

func TestClassifyFamilyByType(t *testing.T) {
	cases := []struct {
		types []string
		want  string
	}{
		{[]string{"restaurant"}, FamilyFood},
		{[]string{"bar"}, FamilyNightlife},
		{[]string{"museum"}, FamilyCulture},
		{[]string{"park"}, FamilyOutdoors},
		{[]string{"bakery"}, FamilyDessert},
		{[]string{"some_unknown_type"}, FamilyOther},
	}
	for _, c := range cases {
		if got := ClassifyFamily(c.types, ""); got != c.want {
			t.Errorf("ClassifyFamily(%v) = %q, want %q", c.types, got, c.want)
		}
	}
}

func TestClassifyFamilyTypeCaseInsensitive(t *testing.T) {
	if got := ClassifyFamily([]string{"RESTAURANT"}, ""); got != FamilyFood {
		t.Errorf("ClassifyFamily = %q, want %q", got, FamilyFood)
	}
}

func TestClassifyFamilyFallsBackToNameHeuristic(t *testing.T) {
	if got := ClassifyFamily(nil, "The Jazz Lounge"); got != FamilyNightlife {
		t.Errorf("ClassifyFamily = %q, want %q", got, FamilyNightlife)
	}
}

func TestClassifyFamilyUnknownEverything(t *testing.T) {
	if got := ClassifyFamily(nil, "Acme Corp"); got != FamilyOther {
		t.Errorf("ClassifyFamily = %q, want %q", got, FamilyOther)
	}
}

func TestClassifyFamilyTypePrecedesNameHeuristic(t *testing.T) {
	// "museum" would match the culture name heuristic, but an explicit
	// food type on the same stop should win.
	if got := ClassifyFamily([]string{"restaurant"}, "City Museum Cafe"); got != FamilyFood {
		t.Errorf("ClassifyFamily = %q, want %q (type takes precedence)", got, FamilyFood)
	}
}
