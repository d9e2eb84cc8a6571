package catalog

// Built-in datasets used when no CSV catalog file is present.

var defaultRecipes = []Recipe{
	{
		Name:        "Quinoa Buddha Bowl",
		Calories:    450,
		PrepTime:    "15 mins",
		Protein:     18,
		Carbs:       52,
		Fats:        16,
		Ingredients: []string{"Quinoa", "Spinach", "Chickpeas", "Avocado", "Tahini"},
	},
	{
		Name:        "Grilled Salmon with Asparagus",
		Calories:    520,
		PrepTime:    "20 mins",
		Protein:     45,
		Carbs:       8,
		Fats:        28,
		Ingredients: []string{"Salmon", "Asparagus", "Olive Oil", "Lemon"},
	},
	{
		Name:        "Chickpea Curry",
		Calories:    380,
		PrepTime:    "25 mins",
		Protein:     14,
		Carbs:       48,
		Fats:        12,
		Ingredients: []string{"Chickpeas", "Coconut Milk", "Curry Spice", "Spinach", "Tomatoes"},
	},
	{
		Name:        "Zucchini Noodles with Pesto",
		Calories:    320,
		PrepTime:    "10 mins",
		Protein:     12,
		Carbs:       18,
		Fats:        18,
		Ingredients: []string{"Zucchini", "Basil", "Olive Oil", "Garlic", "Seeds"},
	},
	{
		Name:        "Lentil Soup",
		Calories:    280,
		PrepTime:    "30 mins",
		Protein:     16,
		Carbs:       42,
		Fats:        4,
		Ingredients: []string{"Red Lentils", "Vegetables", "Vegetable Broth", "Spices"},
	},
}

var defaultWorkouts = []WorkoutTemplate{
	{Name: "HIIT Training", DurationMins: 30, CaloriesBurned: 400, Intensity: "high"},
	{Name: "Running", DurationMins: 45, CaloriesBurned: 450, Intensity: "moderate"},
	{Name: "Yoga", DurationMins: 60, CaloriesBurned: 200, Intensity: "low"},
	{Name: "Weight Training", DurationMins: 60, CaloriesBurned: 300, Intensity: "high"},
	{Name: "Swimming", DurationMins: 45, CaloriesBurned: 500, Intensity: "moderate"},
	{Name: "Cycling", DurationMins: 60, CaloriesBurned: 550, Intensity: "moderate"},
	{Name: "Walking", DurationMins: 30, CaloriesBurned: 150, Intensity: "low"},
}

var defaultArticles = []Article{
	{Title: "Complete Guide to Macronutrients", Preview: "Understanding protein, carbs, and fats and their roles in your body..."},
	{Title: "Benefits of Intermittent Fasting", Preview: "How intermittent fasting works and who should consider it..."},
	{Title: "Hydration & Performance", Preview: "Why water intake matters for fitness and overall health..."},
	{Title: "Healthy Eating on a Budget", Preview: "Tips for nutritious meals without breaking the bank..."},
	{Title: "Superfoods You Should Know About", Preview: "Nutrient-dense foods to add to your diet for better health..."},
}
