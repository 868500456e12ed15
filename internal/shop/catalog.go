// Package shop holds the static cosmetic catalog. Prices are in coins;
// the catalog is configuration, read-only at runtime.
package shop

// Category groups catalog items for browsing.
type Category string

const (
	Furniture   Category = "furniture"
	Decoration  Category = "decoration"
	Pet         Category = "pet"
	Electronics Category = "electronics"
	Background  Category = "background"
	Outfit      Category = "outfit"
	Hair        Category = "hair"
	Accessory   Category = "accessory"
)

// Item is one purchasable cosmetic.
type Item struct {
	ID       string
	Name     string
	Cost     int
	Category Category
}

var catalog = []Item{
	// Furniture
	{"bed", "Bed", 300, Furniture},
	{"sofa", "Sofa", 250, Furniture},
	{"wardrobe", "Wardrobe", 200, Furniture},
	{"table", "Table", 150, Furniture},
	{"chair", "Chair", 80, Furniture},
	{"nightstand", "Nightstand", 100, Furniture},
	{"shelf", "Shelf", 120, Furniture},
	{"lamp", "Lamp", 50, Furniture},
	{"desk", "Desk", 100, Furniture},
	{"armchair", "Armchair", 120, Furniture},
	{"coffee_table", "Coffee Table", 90, Furniture},
	{"ottoman", "Ottoman", 60, Furniture},
	{"fridge", "Fridge", 300, Furniture},
	// Decoration
	{"plant", "Plant", 40, Decoration},
	{"poster", "Poster", 60, Decoration},
	{"rug", "Rug", 70, Decoration},
	{"clock", "Clock", 45, Decoration},
	{"mirror", "Mirror", 55, Decoration},
	{"trophy", "Trophy", 150, Decoration},
	{"globe", "Globe", 65, Decoration},
	// Pets
	{"cat", "Cat", 200, Pet},
	{"dog", "Dog", 200, Pet},
	{"fish", "Fish", 100, Pet},
	// Electronics
	{"computer", "Computer", 250, Electronics},
	{"tablet", "Tablet", 180, Electronics},
	{"camera", "Camera", 150, Electronics},
	// Backgrounds
	{"bg_pink", "Pink Walls", 100, Background},
	{"bg_green", "Green Walls", 100, Background},
	{"bg_space", "Space Walls", 300, Background},
	// Outfits
	{"outfit_dress", "Dress", 150, Outfit},
	{"outfit_overalls", "Overalls", 150, Outfit},
	// Hair
	{"hair_spiky", "Spiky Hair", 50, Hair},
	{"hair_pigtails", "Pigtails", 50, Hair},
	// Accessories
	{"acc_glasses", "Glasses", 80, Accessory},
}

// Catalog returns all items in display order.
func Catalog() []Item {
	return catalog
}

// ByID looks up a catalog item.
func ByID(id string) (Item, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// ByCategory returns the items in one category, in catalog order.
func ByCategory(c Category) []Item {
	var out []Item
	for _, item := range catalog {
		if item.Category == c {
			out = append(out, item)
		}
	}
	return out
}
