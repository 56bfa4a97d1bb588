package pipeline

// DefaultTables returns the compiled-in lookup tables. Deployments normally
// override these with a YAML file (FOOD_TABLES_PATH) so the data can be
// edited without recompiling; the built-in set keeps the service usable out
// of the box.
//
// Protein values follow USDA figures per 100g; calories and default
// portions are typical prepared-serving values.
func DefaultTables() *Tables {
	foods := map[string]CanonicalFood{
		// Meat & poultry
		"chicken":        {ProteinPer100g: 27.0, CaloriesPer100g: 239, DefaultPortionG: 150},
		"chicken breast": {ProteinPer100g: 31.0, CaloriesPer100g: 165, DefaultPortionG: 150},
		"chicken thigh":  {ProteinPer100g: 26.0, CaloriesPer100g: 209, DefaultPortionG: 150},
		"fried chicken":  {ProteinPer100g: 25.0, CaloriesPer100g: 246, DefaultPortionG: 150},
		"beef":           {ProteinPer100g: 26.0, CaloriesPer100g: 250, DefaultPortionG: 150},
		"steak":          {ProteinPer100g: 26.0, CaloriesPer100g: 271, DefaultPortionG: 200},
		"pork":           {ProteinPer100g: 25.0, CaloriesPer100g: 242, DefaultPortionG: 150},
		"pork chop":      {ProteinPer100g: 25.0, CaloriesPer100g: 231, DefaultPortionG: 150},
		"bacon":          {ProteinPer100g: 37.0, CaloriesPer100g: 541, DefaultPortionG: 40},
		"ham":            {ProteinPer100g: 22.0, CaloriesPer100g: 145, DefaultPortionG: 80},
		"sausage":        {ProteinPer100g: 18.0, CaloriesPer100g: 301, DefaultPortionG: 100},
		"turkey":         {ProteinPer100g: 29.0, CaloriesPer100g: 189, DefaultPortionG: 150},
		"lamb":           {ProteinPer100g: 25.0, CaloriesPer100g: 294, DefaultPortionG: 150},
		"meatballs":      {ProteinPer100g: 18.0, CaloriesPer100g: 197, DefaultPortionG: 150},
		"kebab":          {ProteinPer100g: 18.0, CaloriesPer100g: 215, DefaultPortionG: 200},

		// Fish & seafood
		"fish":    {ProteinPer100g: 20.0, CaloriesPer100g: 140, DefaultPortionG: 150},
		"salmon":  {ProteinPer100g: 20.0, CaloriesPer100g: 208, DefaultPortionG: 150},
		"tuna":    {ProteinPer100g: 30.0, CaloriesPer100g: 132, DefaultPortionG: 120},
		"cod":     {ProteinPer100g: 18.0, CaloriesPer100g: 82, DefaultPortionG: 150},
		"shrimp":  {ProteinPer100g: 24.0, CaloriesPer100g: 99, DefaultPortionG: 100},
		"sushi":   {ProteinPer100g: 8.0, CaloriesPer100g: 150, DefaultPortionG: 200},
		"sashimi": {ProteinPer100g: 20.0, CaloriesPer100g: 127, DefaultPortionG: 120},

		// Dairy & eggs
		"egg":            {ProteinPer100g: 13.0, CaloriesPer100g: 155, DefaultPortionG: 100},
		"cheese":         {ProteinPer100g: 25.0, CaloriesPer100g: 402, DefaultPortionG: 50},
		"mozzarella":     {ProteinPer100g: 22.0, CaloriesPer100g: 280, DefaultPortionG: 50},
		"yogurt":         {ProteinPer100g: 10.0, CaloriesPer100g: 59, DefaultPortionG: 170},
		"cottage cheese": {ProteinPer100g: 11.0, CaloriesPer100g: 98, DefaultPortionG: 150},
		"milk":           {ProteinPer100g: 3.4, CaloriesPer100g: 42, DefaultPortionG: 240},

		// Plant proteins & legumes
		"tofu":      {ProteinPer100g: 8.0, CaloriesPer100g: 76, DefaultPortionG: 150},
		"tempeh":    {ProteinPer100g: 20.0, CaloriesPer100g: 193, DefaultPortionG: 100},
		"lentils":   {ProteinPer100g: 9.0, CaloriesPer100g: 116, DefaultPortionG: 150},
		"beans":     {ProteinPer100g: 7.0, CaloriesPer100g: 127, DefaultPortionG: 150},
		"chickpeas": {ProteinPer100g: 9.0, CaloriesPer100g: 164, DefaultPortionG: 150},
		"hummus":    {ProteinPer100g: 8.0, CaloriesPer100g: 166, DefaultPortionG: 100},
		"edamame":   {ProteinPer100g: 11.0, CaloriesPer100g: 121, DefaultPortionG: 100},
		"falafel":   {ProteinPer100g: 8.0, CaloriesPer100g: 333, DefaultPortionG: 120},

		// Grains & starches
		"rice":         {ProteinPer100g: 2.7, CaloriesPer100g: 130, DefaultPortionG: 200},
		"fried rice":   {ProteinPer100g: 6.0, CaloriesPer100g: 163, DefaultPortionG: 250},
		"quinoa":       {ProteinPer100g: 4.4, CaloriesPer100g: 120, DefaultPortionG: 150},
		"pasta":        {ProteinPer100g: 5.0, CaloriesPer100g: 158, DefaultPortionG: 200},
		"noodles":      {ProteinPer100g: 5.0, CaloriesPer100g: 138, DefaultPortionG: 200},
		"bread":        {ProteinPer100g: 8.0, CaloriesPer100g: 265, DefaultPortionG: 60},
		"bagel":        {ProteinPer100g: 10.0, CaloriesPer100g: 250, DefaultPortionG: 100},
		"oatmeal":      {ProteinPer100g: 2.5, CaloriesPer100g: 68, DefaultPortionG: 250},
		"cereal":       {ProteinPer100g: 8.0, CaloriesPer100g: 379, DefaultPortionG: 40},
		"granola":      {ProteinPer100g: 10.0, CaloriesPer100g: 471, DefaultPortionG: 60},
		"potato":       {ProteinPer100g: 2.0, CaloriesPer100g: 77, DefaultPortionG: 200},
		"sweet potato": {ProteinPer100g: 2.0, CaloriesPer100g: 86, DefaultPortionG: 200},
		"french fries": {ProteinPer100g: 3.4, CaloriesPer100g: 312, DefaultPortionG: 150},

		// Vegetables
		"broccoli":  {ProteinPer100g: 2.8, CaloriesPer100g: 34, DefaultPortionG: 100},
		"spinach":   {ProteinPer100g: 2.9, CaloriesPer100g: 23, DefaultPortionG: 80},
		"salad":     {ProteinPer100g: 1.5, CaloriesPer100g: 20, DefaultPortionG: 150},
		"corn":      {ProteinPer100g: 3.3, CaloriesPer100g: 86, DefaultPortionG: 100},
		"peas":      {ProteinPer100g: 5.4, CaloriesPer100g: 81, DefaultPortionG: 100},
		"carrot":    {ProteinPer100g: 0.9, CaloriesPer100g: 41, DefaultPortionG: 80},
		"tomato":    {ProteinPer100g: 0.9, CaloriesPer100g: 18, DefaultPortionG: 100},
		"mushrooms": {ProteinPer100g: 3.1, CaloriesPer100g: 22, DefaultPortionG: 100},
		"avocado":   {ProteinPer100g: 2.0, CaloriesPer100g: 160, DefaultPortionG: 70},

		// Fruit
		"apple":      {ProteinPer100g: 0.3, CaloriesPer100g: 52, DefaultPortionG: 180},
		"banana":     {ProteinPer100g: 1.1, CaloriesPer100g: 89, DefaultPortionG: 120},
		"orange":     {ProteinPer100g: 0.9, CaloriesPer100g: 47, DefaultPortionG: 130},
		"strawberry": {ProteinPer100g: 0.7, CaloriesPer100g: 32, DefaultPortionG: 100},
		"grapes":     {ProteinPer100g: 0.6, CaloriesPer100g: 69, DefaultPortionG: 100},

		// Nuts & spreads
		"almonds":       {ProteinPer100g: 21.0, CaloriesPer100g: 579, DefaultPortionG: 30},
		"peanuts":       {ProteinPer100g: 26.0, CaloriesPer100g: 567, DefaultPortionG: 30},
		"walnuts":       {ProteinPer100g: 15.0, CaloriesPer100g: 654, DefaultPortionG: 30},
		"peanut butter": {ProteinPer100g: 25.0, CaloriesPer100g: 588, DefaultPortionG: 30},

		// Composite dishes the labeling service reports directly
		"pizza":     {ProteinPer100g: 12.0, CaloriesPer100g: 266, DefaultPortionG: 300},
		"hamburger": {ProteinPer100g: 17.0, CaloriesPer100g: 295, DefaultPortionG: 220},
		"hot dog":   {ProteinPer100g: 12.0, CaloriesPer100g: 290, DefaultPortionG: 100},
		"sandwich":  {ProteinPer100g: 15.0, CaloriesPer100g: 250, DefaultPortionG: 200},
		"taco":      {ProteinPer100g: 12.0, CaloriesPer100g: 226, DefaultPortionG: 150},
		"burrito":   {ProteinPer100g: 15.0, CaloriesPer100g: 206, DefaultPortionG: 300},
		"curry":     {ProteinPer100g: 12.0, CaloriesPer100g: 150, DefaultPortionG: 300},
		"soup":      {ProteinPer100g: 4.0, CaloriesPer100g: 50, DefaultPortionG: 300},
		"stew":      {ProteinPer100g: 12.0, CaloriesPer100g: 100, DefaultPortionG: 350},
		"ramen":     {ProteinPer100g: 8.0, CaloriesPer100g: 120, DefaultPortionG: 400},
		"dumplings": {ProteinPer100g: 8.0, CaloriesPer100g: 180, DefaultPortionG: 150},
		"pancakes":  {ProteinPer100g: 6.0, CaloriesPer100g: 227, DefaultPortionG: 150},
		"waffles":   {ProteinPer100g: 6.0, CaloriesPer100g: 291, DefaultPortionG: 120},
	}

	synonyms := map[string]string{
		"ground beef":       "beef",
		"minced beef":       "beef",
		"beef mince":        "beef",
		"mince":             "beef",
		"beef steak":        "steak",
		"ribeye":            "steak",
		"sirloin":           "steak",
		"roast beef":        "beef",
		"grilled chicken":   "chicken",
		"roasted chicken":   "chicken",
		"chicken fillet":    "chicken breast",
		"chicken meat":      "chicken",
		"turkey breast":     "turkey",
		"eggs":              "egg",
		"scrambled eggs":    "egg",
		"fried egg":         "egg",
		"fried eggs":        "egg",
		"boiled egg":        "egg",
		"omelet":            "egg",
		"omelette":          "egg",
		"spaghetti":         "pasta",
		"penne":             "pasta",
		"fettuccine":        "pasta",
		"macaroni":          "pasta",
		"noodle":            "noodles",
		"white rice":        "rice",
		"brown rice":        "rice",
		"jasmine rice":      "rice",
		"basmati rice":      "rice",
		"steamed rice":      "rice",
		"white bread":       "bread",
		"whole wheat bread": "bread",
		"toast":             "bread",
		"sourdough":         "bread",
		"burger":            "hamburger",
		"cheeseburger":      "hamburger",
		"beef burger":       "hamburger",
		"fries":             "french fries",
		"chips":             "french fries",
		"greek yogurt":      "yogurt",
		"greek salad":       "salad",
		"garden salad":      "salad",
		"prawns":            "shrimp",
		"prawn":             "shrimp",
		"porridge":          "oatmeal",
		"rolled oats":       "oatmeal",
		"garbanzo beans":    "chickpeas",
		"black beans":       "beans",
		"kidney beans":      "beans",
		"seafood":           "fish",
		"mushroom":          "mushrooms",
		"cherry tomato":     "tomato",
	}

	// Abstract terms, dishware and garnish-only labels the labeling service
	// emits for almost every plate photo.
	denylist := []string{
		"food", "meal", "dish", "cuisine", "recipe", "ingredient",
		"cooking", "kitchen", "restaurant", "dinner", "lunch", "breakfast",
		"brunch", "snack", "fast food", "comfort food", "staple food",
		"superfood", "produce", "vegetable", "fruit", "meat", "protein",
		"plate", "tableware", "cutlery", "fork", "knife", "spoon", "bowl",
		"cup", "glass", "table", "napkin",
		"garnish", "herb", "spice", "sauce", "dressing", "condiment",
		"ketchup", "mayonnaise", "mustard",
		"drink", "beverage", "brand", "logo", "person", "hand",
	}

	patterns := []DishPattern{
		{
			Name:         "breakfast-plate",
			Priority:     1,
			Foods:        []string{"bread", "egg", "bacon"},
			TotalWeightG: 350,
			Shares:       map[string]float64{"bread": 0.40, "egg": 0.35, "bacon": 0.25},
		},
		{
			Name:         "pasta-with-meat",
			Priority:     2,
			Foods:        []string{"pasta", "beef"},
			TotalWeightG: 300,
			Shares:       map[string]float64{"pasta": 2.0 / 3.0, "beef": 1.0 / 3.0},
		},
		{
			Name:         "pasta-with-meatballs",
			Priority:     3,
			Foods:        []string{"pasta", "meatballs"},
			TotalWeightG: 350,
			Shares:       map[string]float64{"pasta": 0.60, "meatballs": 0.40},
		},
		{
			Name:         "fish-and-chips",
			Priority:     4,
			Foods:        []string{"fish", "french fries"},
			TotalWeightG: 400,
			Shares:       map[string]float64{"fish": 0.45, "french fries": 0.55},
		},
		{
			Name:         "rice-and-beans",
			Priority:     5,
			Foods:        []string{"rice", "beans"},
			TotalWeightG: 350,
			Shares:       map[string]float64{"rice": 0.60, "beans": 0.40},
		},
	}

	return &Tables{
		Foods:    foods,
		Synonyms: synonyms,
		Denylist: denylist,
		Patterns: patterns,
		MaxItems: 4,
	}
}
