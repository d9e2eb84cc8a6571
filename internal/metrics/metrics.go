// Package metrics implements the health-metrics formulas. Every function is
// pure and deterministic: no I/O, no shared state. Input hygiene is the
// caller's responsibility; the documented guards (height > 0, weeks > 0) are
// not re-checked here.
package metrics

import (
	"errors"
	"math"
	"strings"
)

// Gender selects the coefficient row for the gendered formulas. Kept as an
// enumerated type rather than a raw string so new categories only touch the
// coefficient tables, never the formula code.
type Gender int

const (
	Male Gender = iota
	Female
)

var ErrUnknownGender = errors.New("gender must be \"male\" or \"female\"")

// ParseGender validates a gender string case-insensitively. The original
// system silently routed every non-"male" value to the female branch; that is
// surfaced here as an input-validation error instead.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	default:
		return Female, ErrUnknownGender
	}
}

func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// Per-gender coefficients. Any Gender value other than Male resolves to the
// female row, matching the original two-branch behavior.
var (
	// Mifflin-St Jeor additive constant.
	bmrConstant = map[Gender]float64{Male: 5, Female: -161}
	// Deurenberg-style body-fat offset.
	bodyFatOffset = map[Gender]float64{Male: 16.2, Female: 5.4}
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels; unknown
// levels fall back to DefaultActivityMultiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const DefaultActivityMultiplier = 1.55

// ActivityLevels returns the recognized activity level names.
func ActivityLevels() []string {
	levels := make([]string, 0, len(activityMultipliers))
	for l := range activityMultipliers {
		levels = append(levels, l)
	}
	return levels
}

// ValidActivityLevel reports whether level has an explicit multiplier.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// BMI computes Body Mass Index (kg/m²) rounded to 1 decimal.
// Undefined for heightM == 0; the caller must guard.
func BMI(weightKg, heightM float64) float64 {
	return round1(weightKg / (heightM * heightM))
}

// BMICategory classifies a BMI value into the standard four buckets. The
// lower bound of each bucket is inclusive: a value exactly on a boundary
// belongs to the higher bucket.
func BMICategory(bmi float64) (label, indicator string) {
	switch {
	case bmi < 18.5:
		return "Underweight", "yellow"
	case bmi < 25:
		return "Normal", "green"
	case bmi < 30:
		return "Overweight", "orange"
	default:
		return "Obese", "red"
	}
}

// TDEE computes total daily energy expenditure and basal metabolic rate
// (Mifflin-St Jeor), both rounded to the nearest integer. An unrecognized
// activity level uses DefaultActivityMultiplier.
func TDEE(weightKg, heightCm float64, age int, gender Gender, activityLevel string) (tdee, bmr int) {
	c, ok := bmrConstant[gender]
	if !ok {
		c = bmrConstant[Female]
	}
	bmrF := 10*weightKg + 6.25*heightCm - 5*float64(age) + c

	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = DefaultActivityMultiplier
	}
	return int(math.Round(bmrF * mult)), int(math.Round(bmrF))
}

// MacroSplit holds macronutrient gram targets.
type MacroSplit struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// MacroBreakdown converts a calorie budget and percentage split into gram
// targets using 4 kcal/g for protein and carbs and 9 kcal/g for fat.
// Percentages are taken as given and are not required to sum to 100.
func MacroBreakdown(calories float64, proteinPct, carbPct, fatPct float64) MacroSplit {
	return MacroSplit{
		ProteinG: round1(calories * proteinPct / 100 / 4),
		CarbsG:   round1(calories * carbPct / 100 / 4),
		FatG:     round1(calories * fatPct / 100 / 9),
	}
}

// WaistHipRatio returns waist/hip rounded to 2 decimals.
func WaistHipRatio(waistCm, hipCm float64) float64 {
	return round2(waistCm / hipCm)
}

// BodyFatEstimate is the linear BMI-based estimate 1.20*bmi + 0.23*age - C,
// clamped to a minimum of 0 and rounded to 1 decimal.
func BodyFatEstimate(bmi float64, age int, gender Gender) float64 {
	c, ok := bodyFatOffset[gender]
	if !ok {
		c = bodyFatOffset[Female]
	}
	return round1(math.Max(0, 1.20*bmi+0.23*float64(age)-c))
}

// CalorieTargetForDeficit derives a daily calorie target that spreads a
// 7000 kcal/week-equivalent deficit (~1 kg of fat) evenly across the goal
// horizon. Undefined for weeks <= 0; the caller must guard.
func CalorieTargetForDeficit(tdee int, weeks int) int {
	weeklyDeficit := 7000 / float64(weeks)
	return int(math.Round(float64(tdee) - weeklyDeficit/7))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
