package catalog

import (
	"strings"

	"github.com/ots-platform/ibe-mock/internal/model"
)

// Meal catalog entry as generated for every air.
type mealSpec struct {
	ID       string
	Subcode  string
	Name     string
	Category string
	Amount   float64
}

var mealSpecs = []mealSpec{
	{"MEAL_GOURMET", "GM", "gourmet meal", "MEAL", 18.0},
	{"MEAL_STANDARD", "ST", "standard meal", "MEAL", 12.0},
	{"MEAL_VEG", "VG", "vegetarian meal", "MEAL", 12.0},
	{"DRINK_WATER", "WA", "water", "DRINK", 3.0},
	{"DRINK_SOFT", "SD", "soft drink", "DRINK", 6.0},
	{"DRINK_CHAMPAGNE", "CH", "champagne", "DRINK", 35.0},
}

// Fallback pricing for meal ids not present in the catalog.
const (
	unknownMealAmount  = 10.0
	unknownDrinkAmount = 8.0
)

// MealOptions returns the full purchasable meal catalog priced in the given
// currency.
func MealOptions(currency string) []model.MealOption {
	out := make([]model.MealOption, 0, len(mealSpecs))
	for _, s := range mealSpecs {
		out = append(out, mealOption(s, currency))
	}
	return out
}

// MealByID resolves a meal id to its catalog entry. Unknown ids still yield
// a usable option: drinks when the id says so, a generic meal otherwise,
// titled from the id itself.
func MealByID(id, currency string) model.MealOption {
	for _, s := range mealSpecs {
		if s.ID == id {
			return mealOption(s, currency)
		}
	}
	s := mealSpec{ID: id, Subcode: "XX", Category: "MEAL", Amount: unknownMealAmount}
	if strings.Contains(id, "DRINK") {
		s.Category = "DRINK"
		s.Amount = unknownDrinkAmount
	}
	s.Name = strings.ReplaceAll(strings.ToLower(id), "_", " ")
	return mealOption(s, currency)
}

func mealOption(s mealSpec, currency string) model.MealOption {
	category, subCategory := "Meals", "MEALS"
	localizedSub := "Meals"
	if s.Category == "DRINK" {
		category, subCategory, localizedSub = "Drinks", "DRINKS", "Drinks"
	}
	if s.ID == "MEAL_GOURMET" {
		subCategory, localizedSub = "GOURMET", "Gourmet"
	}
	return model.MealOption{
		ID:      s.ID,
		Subcode: s.Subcode,
		Paid:    true,
		Pricing: model.NewItemPricing(s.Amount, currency),
		MealDetails: model.MealDetails{
			Category:             s.Category,
			SubCategory:          subCategory,
			LocalizedTitles:      map[string]string{"en_US": s.Name},
			LocalizedCategory:    map[string]string{"en_US": category},
			LocalizedSubCategory: map[string]string{"en_US": localizedSub},
		},
		Name:     s.Name,
		Category: s.Category,
	}
}
