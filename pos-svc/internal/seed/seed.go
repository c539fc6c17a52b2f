// Package seed holds the floor a fresh install starts with.
package seed

import "cafe-floor/pos-svc/internal/domain"

// State returns a new copy of the starting floor on every call.
func State() domain.State {
	return domain.State{
		Orders:     []domain.Order{},
		Tables:     tables(),
		KotTickets: []domain.KotEvent{},
		Menu:       menu(),
		Recipes:    recipes(),
		Inventory:  inventory(),
		Waiters:    waiters(),
	}
}

func tables() []domain.Table {
	return []domain.Table{
		{ID: "table-1", Label: "T1", Capacity: 2, Status: domain.TableAvailable},
		{ID: "table-2", Label: "T2", Capacity: 2, Status: domain.TableAvailable},
		{ID: "table-3", Label: "T3", Capacity: 4, Status: domain.TableAvailable},
		{ID: "table-4", Label: "T4", Capacity: 4, Status: domain.TableAvailable},
		{ID: "table-5", Label: "Window", Capacity: 6, Status: domain.TableAvailable},
		{ID: "table-6", Label: "Patio", Capacity: 8, Status: domain.TableReserved},
	}
}

func menu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "menu-espresso", Name: "Espresso", Category: domain.CategoryCoffee, Price: 3.00, Tags: []string{"hot"}, IsAvailable: true, RecipeID: "recipe-espresso"},
		{ID: "menu-flat-white", Name: "Flat White", Category: domain.CategoryCoffee, Price: 4.50, Tags: []string{"hot", "milk"}, IsAvailable: true, RecipeID: "recipe-flat-white"},
		{ID: "menu-cold-brew", Name: "Cold Brew", Category: domain.CategoryCoffee, Price: 5.00, Tags: []string{"iced"}, IsAvailable: true, RecipeID: "recipe-cold-brew"},
		{ID: "menu-chai", Name: "Masala Chai", Category: domain.CategoryTea, Price: 4.25, Tags: []string{"hot", "milk"}, IsAvailable: true, RecipeID: "recipe-chai"},
		{ID: "menu-sencha", Name: "Sencha", Category: domain.CategoryTea, Price: 3.75, Tags: []string{"hot", "vegan"}, IsAvailable: true},
		{ID: "menu-croissant", Name: "Butter Croissant", Category: domain.CategoryPastry, Price: 3.50, Tags: []string{"vegetarian"}, IsAvailable: true, RecipeID: "recipe-croissant"},
		{ID: "menu-banana-bread", Name: "Banana Bread", Category: domain.CategoryPastry, Price: 4.00, Tags: []string{"vegetarian"}, IsAvailable: true},
		{ID: "menu-avo-toast", Name: "Avocado Toast", Category: domain.CategoryFood, Price: 11.50, Tags: []string{"vegan"}, IsAvailable: true, RecipeID: "recipe-avo-toast"},
		{ID: "menu-breakfast-roll", Name: "Breakfast Roll", Category: domain.CategoryFood, Price: 12.00, IsAvailable: true, RecipeID: "recipe-breakfast-roll"},
		{ID: "menu-granola", Name: "Granola Bowl", Category: domain.CategoryFood, Price: 9.50, Tags: []string{"vegetarian"}, IsAvailable: true, RecipeID: "recipe-granola"},
		{ID: "menu-sparkling", Name: "Sparkling Water", Category: domain.CategoryOther, Price: 3.00, IsAvailable: true},
	}
}

func recipes() []domain.Recipe {
	return []domain.Recipe{
		{ID: "recipe-espresso", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-beans", Quantity: 18, Unit: "g"},
		}, Instructions: []string{"Grind 18g of beans.", "Pull a 36g double shot in 28 seconds."}},
		{ID: "recipe-flat-white", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-beans", Quantity: 18, Unit: "g"},
			{InventoryItemID: "inv-milk", Quantity: 0.16, Unit: "l"},
		}, Instructions: []string{"Pull a double shot.", "Steam milk to 60C with fine microfoam.", "Pour over the shot."}},
		{ID: "recipe-cold-brew", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-cold-brew", Quantity: 0.3, Unit: "l"},
		}, Instructions: []string{"Fill a glass with ice.", "Pour the concentrate over the ice."}},
		{ID: "recipe-chai", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-chai", Quantity: 0.05, Unit: "l"},
			{InventoryItemID: "inv-milk", Quantity: 0.2, Unit: "l"},
		}, Instructions: []string{"Add concentrate to the jug.", "Steam with milk and pour."}},
		{ID: "recipe-croissant", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-croissant", Quantity: 1, Unit: "pc"},
		}, Instructions: []string{"Warm for two minutes.", "Plate and serve."}},
		{ID: "recipe-avo-toast", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-sourdough", Quantity: 2, Unit: "slice"},
			{InventoryItemID: "inv-avocado", Quantity: 1, Unit: "pc"},
		}, Instructions: []string{"Toast the sourdough.", "Smash the avocado onto the toast.", "Finish with lemon and chilli."}},
		{ID: "recipe-breakfast-roll", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-brioche", Quantity: 1, Unit: "pc"},
			{InventoryItemID: "inv-eggs", Quantity: 2, Unit: "pc"},
			{InventoryItemID: "inv-bacon", Quantity: 2, Unit: "rasher"},
		}, Instructions: []string{"Fry the eggs and bacon.", "Toast the brioche.", "Build the roll."}},
		{ID: "recipe-granola", Ingredients: []domain.Ingredient{
			{InventoryItemID: "inv-granola", Quantity: 0.08, Unit: "kg"},
			{InventoryItemID: "inv-milk", Quantity: 0.15, Unit: "l"},
		}, Instructions: []string{"Pour granola into a bowl.", "Add milk.", "Top with seasonal fruit."}},
	}
}

func inventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "inv-beans", Name: "Espresso beans", Unit: "g", Quantity: 5000, ParLevel: 1000, CostPerUnit: 0.03},
		{ID: "inv-milk", Name: "Whole milk", Unit: "l", Quantity: 20, ParLevel: 6, CostPerUnit: 1.40},
		{ID: "inv-cold-brew", Name: "Cold brew concentrate", Unit: "l", Quantity: 6, ParLevel: 2, CostPerUnit: 4.00},
		{ID: "inv-chai", Name: "Chai concentrate", Unit: "l", Quantity: 2, ParLevel: 1, CostPerUnit: 9.50},
		{ID: "inv-croissant", Name: "Croissants", Unit: "pc", Quantity: 24, ParLevel: 8, CostPerUnit: 1.10},
		{ID: "inv-sourdough", Name: "Sourdough", Unit: "slice", Quantity: 40, ParLevel: 12, CostPerUnit: 0.35},
		{ID: "inv-avocado", Name: "Avocados", Unit: "pc", Quantity: 10, ParLevel: 6, CostPerUnit: 1.80},
		{ID: "inv-brioche", Name: "Brioche buns", Unit: "pc", Quantity: 12, ParLevel: 6, CostPerUnit: 0.90},
		{ID: "inv-eggs", Name: "Free range eggs", Unit: "pc", Quantity: 60, ParLevel: 24, CostPerUnit: 0.45},
		{ID: "inv-bacon", Name: "Bacon", Unit: "rasher", Quantity: 30, ParLevel: 12, CostPerUnit: 0.60},
		{ID: "inv-granola", Name: "House granola", Unit: "kg", Quantity: 1.5, ParLevel: 1.5, CostPerUnit: 12.00},
	}
}

func waiters() []domain.Waiter {
	return []domain.Waiter{
		{ID: "waiter-1", Name: "Ava", Role: "server"},
		{ID: "waiter-2", Name: "Noah", Role: "server"},
		{ID: "waiter-3", Name: "Mia", Role: "barista"},
		{ID: "waiter-4", Name: "Leo", Role: "manager"},
	}
}
