package shop

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range Catalog() {
		if it.ID == "" || it.Name == "" {
			t.Errorf("incomplete item: %+v", it)
		}
		if it.Cost <= 0 {
			t.Errorf("%s has cost %d", it.ID, it.Cost)
		}
		if seen[it.ID] {
			t.Errorf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestByID(t *testing.T) {
	it, ok := ByID("bed")
	if !ok || it.Name != "Bed" || it.Cost != 300 || it.Category != Furniture {
		t.Errorf("ByID(bed) = %+v, %v", it, ok)
	}
	if _, ok := ByID("golden-throne"); ok {
		t.Error("unknown id accepted")
	}
}

func TestByCategory(t *testing.T) {
	pets := ByCategory(Pet)
	if len(pets) != 3 {
		t.Errorf("pets = %+v", pets)
	}
	for _, it := range pets {
		if it.Category != Pet {
			t.Errorf("%s in wrong category %s", it.ID, it.Category)
		}
	}

	if got := ByCategory("vehicles"); len(got) != 0 {
		t.Errorf("unknown category returned %+v", got)
	}
}
