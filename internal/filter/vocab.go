package filter

// RestrictionOptions is the canonical set of dietary restrictions the client
// offers. Recipes carry free-text diet tags from the provider, so matching
// stays open-vocabulary; this list only drives the selection UI.
var RestrictionOptions = []string{
	"No meat",
	"No nuts",
	"No eggs",
	"No gluten",
	"No shellfish",
	"No lactose",
}

// PantryCategories lists the category names in display order.
var PantryCategories = []string{
	"Essentials",
	"Fruits & Veggies",
	"Meats",
	"Carbohydrates",
	"Seasonings",
}

// PantryItems maps each category to its selectable items.
var PantryItems = map[string][]string{
	"Essentials":       {"Salt", "Pepper", "Oil", "Sugar"},
	"Fruits & Veggies": {"Apple", "Carrot", "Tomato"},
	"Meats":            {"Chicken", "Beef", "Pork"},
	"Carbohydrates":    {"Rice", "Pasta", "Bread"},
	"Seasonings":       {"Basil", "Oregano", "Cumin"},
}
