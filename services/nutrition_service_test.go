package services

import (
	"errors"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func catalogResolver(foods map[uint]*models.Food) FoodResolver {
	return func(id uint) (*models.Food, error) {
		if f, ok := foods[id]; ok {
			return f, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func testCatalog() map[uint]*models.Food {
	apple := &models.Food{Name: "Apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbohydratesPer100g: 13.8, FatPer100g: 0.2}
	apple.ID = 1
	chicken := &models.Food{Name: "Chicken breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbohydratesPer100g: 0, FatPer100g: 3.6}
	chicken.ID = 2
	rice := &models.Food{Name: "White rice, cooked", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbohydratesPer100g: 28.2, FatPer100g: 0.3}
	rice.ID = 3
	return map[uint]*models.Food{1: apple, 2: chicken, 3: rice}
}

func TestRoundingHelpers(t *testing.T) {
	assert.Equal(t, 78.0, RoundCalories(78.0))
	assert.Equal(t, 78.0, RoundCalories(77.5))
	assert.Equal(t, 77.0, RoundCalories(77.4))

	assert.Equal(t, 0.5, RoundMacro(0.45))
	assert.Equal(t, 20.7, RoundMacro(20.7))
	assert.Equal(t, 3.1, RoundMacro(3.14))
}

func TestComputeEntryTotals_PerItemScaling(t *testing.T) {
	meals := []MealRequest{{
		Type:  "breakfast",
		Items: []MealItemRequest{{FoodID: 1, Quantity: 150, Unit: "g"}},
	}}

	out, day, err := ComputeEntryTotals(meals, catalogResolver(testCatalog()))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 1)

	// 150 g of a 52 kcal/100g food: multiplier 1.5
	item := out[0].Items[0]
	assert.Equal(t, "Apple", item.FoodName)
	assert.Equal(t, 78.0, item.Calories)      // 52 * 1.5 = 78
	assert.Equal(t, 0.5, item.Protein)        // 0.3 * 1.5 = 0.45 -> 0.5
	assert.Equal(t, 20.7, item.Carbohydrates) // 13.8 * 1.5
	assert.Equal(t, 0.3, item.Fat)            // 0.2 * 1.5

	assert.Equal(t, 78.0, out[0].TotalCalories)
	assert.Equal(t, 78.0, day.Calories)
}

func TestComputeEntryTotals_ScalesLinearly(t *testing.T) {
	resolve := catalogResolver(testCatalog())
	single := []MealRequest{{Type: "snack", Items: []MealItemRequest{{FoodID: 3, Quantity: 90, Unit: "g"}}}}
	double := []MealRequest{{Type: "snack", Items: []MealItemRequest{{FoodID: 3, Quantity: 180, Unit: "g"}}}}

	_, dayA, err := ComputeEntryTotals(single, resolve)
	require.NoError(t, err)
	_, dayB, err := ComputeEntryTotals(double, resolve)
	require.NoError(t, err)

	// doubling quantity doubles calories, up to whole-kcal rounding
	assert.InDelta(t, 2*dayA.Calories, dayB.Calories, 1.0)
}

func TestComputeEntryTotals_MealSumsRoundedItems(t *testing.T) {
	meals := []MealRequest{{
		Type: "lunch",
		Items: []MealItemRequest{
			{FoodID: 2, Quantity: 120, Unit: "g"}, // 165 * 1.2 = 198
			{FoodID: 3, Quantity: 185, Unit: "g"}, // 130 * 1.85 = 240.5 -> 241
		},
	}}

	out, day, err := ComputeEntryTotals(meals, catalogResolver(testCatalog()))
	require.NoError(t, err)

	first := out[0].Items[0].Calories
	second := out[0].Items[1].Calories
	assert.Equal(t, 198.0, first)
	assert.Equal(t, 241.0, second) // math.Round halves away from zero
	// the meal total is the sum of what the user sees on each line
	assert.Equal(t, first+second, out[0].TotalCalories)
	assert.Equal(t, first+second, day.Calories)
}

func TestComputeEntryTotals_GroupingInvariant(t *testing.T) {
	resolve := catalogResolver(testCatalog())
	items := []MealItemRequest{
		{FoodID: 1, Quantity: 80, Unit: "g"},
		{FoodID: 2, Quantity: 200, Unit: "g"},
		{FoodID: 3, Quantity: 150, Unit: "g"},
	}

	oneMeal := []MealRequest{{Type: "dinner", Items: items}}
	split := []MealRequest{
		{Type: "lunch", Items: items[:1]},
		{Type: "dinner", Items: items[1:]},
	}

	_, dayA, err := ComputeEntryTotals(oneMeal, resolve)
	require.NoError(t, err)
	_, dayB, err := ComputeEntryTotals(split, resolve)
	require.NoError(t, err)

	// daily totals are over items, so meal grouping must not matter
	assert.Equal(t, dayA, dayB)
}

func TestComputeEntryTotals_MissingFoodFailsWhole(t *testing.T) {
	meals := []MealRequest{{
		Type: "snack",
		Items: []MealItemRequest{
			{FoodID: 1, Quantity: 100, Unit: "g"},
			{FoodID: 99, Quantity: 50, Unit: "g"},
		},
	}}

	out, day, err := ComputeEntryTotals(meals, catalogResolver(testCatalog()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFoodNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Nil(t, out)
	assert.Equal(t, DailyTotals{}, day)
}

func TestComputeEntryTotals_ResolverErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection reset")
	resolve := func(id uint) (*models.Food, error) { return nil, boom }

	_, _, err := ComputeEntryTotals([]MealRequest{{
		Type:  "breakfast",
		Items: []MealItemRequest{{FoodID: 1, Quantity: 100, Unit: "g"}},
	}}, resolve)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFoodNotFound)
	assert.ErrorIs(t, err, boom)
}

func TestComputeEntryTotals_ZeroQuantity(t *testing.T) {
	out, day, err := ComputeEntryTotals([]MealRequest{{
		Type:  "snack",
		Items: []MealItemRequest{{FoodID: 2, Quantity: 0, Unit: "g"}},
	}}, catalogResolver(testCatalog()))

	require.NoError(t, err)
	assert.Equal(t, 0.0, out[0].Items[0].Calories)
	assert.Equal(t, DailyTotals{}, day)
}
