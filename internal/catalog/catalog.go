// Package catalog serves the static reference data: the recipe catalog, the
// workout-template catalog, and the education articles. Recipes and workouts
// load from CSV files at startup; a built-in dataset is used when a file is
// absent so the application always has content to show.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Recipe is one entry in the recipe catalog.
type Recipe struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	PrepTime    string   `json:"prep_time"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	Ingredients []string `json:"ingredients"`
}

// WorkoutTemplate is one entry in the workout catalog. CaloriesBurned is the
// estimate for the template's reference duration; quick-logging scales it
// linearly to the actual duration.
type WorkoutTemplate struct {
	Name           string `json:"name"`
	DurationMins   int    `json:"duration_mins"`
	CaloriesBurned int    `json:"calories_burned"`
	Intensity      string `json:"intensity"`
}

// Article is a static education entry; the full text is generated on demand
// by the AI planner.
type Article struct {
	Title   string `json:"title"`
	Preview string `json:"preview"`
}

// Catalog holds the loaded reference data.
type Catalog struct {
	recipes  []Recipe
	workouts []WorkoutTemplate
	articles []Article
}

// Load builds a catalog from the given CSV paths, falling back to the
// built-in datasets for any file that does not exist. A file that exists but
// fails to parse is an error: silently serving fallback data would mask a
// broken deployment.
func Load(recipeCSVPath, workoutCSVPath string) (*Catalog, error) {
	c := &Catalog{
		recipes:  defaultRecipes,
		workouts: defaultWorkouts,
		articles: defaultArticles,
	}

	if recipes, err := loadRecipesCSV(recipeCSVPath); err == nil {
		c.recipes = recipes
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading recipe catalog: %w", err)
	} else {
		log.Printf("recipe catalog %s not found, using built-in dataset", recipeCSVPath)
	}

	if workouts, err := loadWorkoutsCSV(workoutCSVPath); err == nil {
		c.workouts = workouts
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading workout catalog: %w", err)
	} else {
		log.Printf("workout catalog %s not found, using built-in dataset", workoutCSVPath)
	}

	return c, nil
}

// Recipes returns the recipe catalog.
func (c *Catalog) Recipes() []Recipe {
	return c.recipes
}

// Workouts returns the workout-template catalog.
func (c *Catalog) Workouts() []WorkoutTemplate {
	return c.workouts
}

// Articles returns the education articles.
func (c *Catalog) Articles() []Article {
	return c.articles
}

// FindRecipe looks up a recipe by exact name.
func (c *Catalog) FindRecipe(name string) (Recipe, bool) {
	for _, r := range c.recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}

// FindWorkout looks up a workout template by exact name.
func (c *Catalog) FindWorkout(name string) (WorkoutTemplate, bool) {
	for _, w := range c.workouts {
		if w.Name == name {
			return w, true
		}
	}
	return WorkoutTemplate{}, false
}

// FindArticle looks up an article by exact title.
func (c *Catalog) FindArticle(title string) (Article, bool) {
	for _, a := range c.articles {
		if a.Title == title {
			return a, true
		}
	}
	return Article{}, false
}

// ShoppingList returns the deduplicated, sorted union of ingredients across
// the named recipes. Unknown recipe names are skipped.
func (c *Catalog) ShoppingList(recipeNames []string) []string {
	seen := make(map[string]struct{})
	for _, name := range recipeNames {
		recipe, ok := c.FindRecipe(name)
		if !ok {
			continue
		}
		for _, ing := range recipe.Ingredients {
			seen[strings.TrimSpace(ing)] = struct{}{}
		}
	}
	list := make([]string, 0, len(seen))
	for ing := range seen {
		list = append(list, ing)
	}
	sort.Strings(list)
	return list
}

// loadRecipesCSV reads the recipe catalog from a CSV file with the columns
// name, calories, prep_time, protein, carbs, fats, ingredients (ingredients
// comma-separated within the field).
func loadRecipesCSV(path string) ([]Recipe, error) {
	rows, err := readCSV(path, []string{"name", "calories", "prep_time", "protein", "carbs", "fats", "ingredients"})
	if err != nil {
		return nil, err
	}

	recipes := make([]Recipe, 0, len(rows))
	for i, row := range rows {
		calories, err := strconv.Atoi(row["calories"])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad calories %q", i+1, row["calories"])
		}
		protein, err := strconv.ParseFloat(row["protein"], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad protein %q", i+1, row["protein"])
		}
		carbs, err := strconv.ParseFloat(row["carbs"], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad carbs %q", i+1, row["carbs"])
		}
		fats, err := strconv.ParseFloat(row["fats"], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad fats %q", i+1, row["fats"])
		}

		ingredients := strings.Split(row["ingredients"], ",")
		for j := range ingredients {
			ingredients[j] = strings.TrimSpace(ingredients[j])
		}

		recipes = append(recipes, Recipe{
			Name:        row["name"],
			Calories:    calories,
			PrepTime:    row["prep_time"],
			Protein:     protein,
			Carbs:       carbs,
			Fats:        fats,
			Ingredients: ingredients,
		})
	}
	return recipes, nil
}

// loadWorkoutsCSV reads the workout catalog from a CSV file with the columns
// name, duration_mins, calories_burned, intensity.
func loadWorkoutsCSV(path string) ([]WorkoutTemplate, error) {
	rows, err := readCSV(path, []string{"name", "duration_mins", "calories_burned", "intensity"})
	if err != nil {
		return nil, err
	}

	workouts := make([]WorkoutTemplate, 0, len(rows))
	for i, row := range rows {
		duration, err := strconv.Atoi(row["duration_mins"])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad duration_mins %q", i+1, row["duration_mins"])
		}
		// The reference duration is a scaling divisor for quick-logging, so
		// zero is as invalid as a negative value.
		if duration <= 0 {
			return nil, fmt.Errorf("row %d: duration_mins must be positive, got %d", i+1, duration)
		}
		calories, err := strconv.Atoi(row["calories_burned"])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad calories_burned %q", i+1, row["calories_burned"])
		}

		workouts = append(workouts, WorkoutTemplate{
			Name:           row["name"],
			DurationMins:   duration,
			CaloriesBurned: calories,
			Intensity:      strings.ToLower(row["intensity"]),
		})
	}
	return workouts, nil
}

// readCSV parses a headered CSV file and returns one map per data row keyed
// by column name. Every column in required must be present in the header.
func readCSV(path string, required []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(required))
		for _, col := range required {
			if index[col] < len(record) {
				row[col] = strings.TrimSpace(record[index[col]])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
