package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.Equal(t, 22.9, BMI(70, 1.75))
	assert.Equal(t, 24.2, BMI(62, 1.60))
}

// BMI must be monotonically increasing in weight and decreasing in height.
func TestBMIMonotonicity(t *testing.T) {
	for w := 40.0; w < 150; w += 10 {
		assert.Less(t, BMI(w, 1.75), BMI(w+10, 1.75), "weight %v", w)
	}
	for h := 1.4; h < 2.1; h += 0.1 {
		assert.Greater(t, BMI(80, h), BMI(80, h+0.1), "height %v", h)
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi   float64
		label string
	}{
		{18.49, "Underweight"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25.0, "Overweight"},
		{29.99, "Overweight"},
		{30.0, "Obese"},
		{45.0, "Obese"},
	}
	for _, tc := range cases {
		label, _ := BMICategory(tc.bmi)
		assert.Equal(t, tc.label, label, "bmi %v", tc.bmi)
	}
}

func TestTDEEReference(t *testing.T) {
	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1673.75 -> 1674
	// TDEE = 1673.75 * 1.2 = 2008.5 -> 2009
	tdee, bmr := TDEE(70, 175, 30, Male, "sedentary")
	assert.Equal(t, 1674, bmr)
	assert.Equal(t, 2009, tdee)
}

func TestTDEEFemaleConstant(t *testing.T) {
	// Female branch swaps +5 for -161, a fixed 166 kcal difference in BMR.
	_, male := TDEE(70, 175, 30, Male, "moderate")
	_, female := TDEE(70, 175, 30, Female, "moderate")
	assert.Equal(t, 166, male-female)
}

func TestTDEEUnknownActivityFallsBack(t *testing.T) {
	tdee, _ := TDEE(70, 175, 30, Male, "weekend_warrior")
	moderate, _ := TDEE(70, 175, 30, Male, "moderate")
	assert.Equal(t, moderate, tdee)
}

func TestMacroBreakdown(t *testing.T) {
	split := MacroBreakdown(2000, 30, 50, 20)
	assert.Equal(t, 150.0, split.ProteinG)
	assert.Equal(t, 250.0, split.CarbsG)
	assert.Equal(t, 44.4, split.FatG)
}

// Percentages are deliberately not validated; splits that do not sum to 100
// still produce proportional gram targets.
func TestMacroBreakdownUnbalancedSplit(t *testing.T) {
	split := MacroBreakdown(1000, 100, 100, 100)
	assert.Equal(t, 250.0, split.ProteinG)
	assert.Equal(t, 250.0, split.CarbsG)
	assert.Equal(t, 111.1, split.FatG)
}

func TestWaistHipRatio(t *testing.T) {
	assert.Equal(t, 0.89, WaistHipRatio(80, 90))
	assert.Equal(t, 1.0, WaistHipRatio(95, 95))
}

func TestBodyFatEstimate(t *testing.T) {
	// 1.20*22.9 + 0.23*30 - 16.2 = 18.18 -> 18.2
	assert.Equal(t, 18.2, BodyFatEstimate(22.9, 30, Male))
	// Female offset is smaller: 1.20*22.9 + 0.23*30 - 5.4 = 28.98 -> 29.0
	assert.Equal(t, 29.0, BodyFatEstimate(22.9, 30, Female))
}

func TestBodyFatEstimateClampedAtZero(t *testing.T) {
	assert.Equal(t, 0.0, BodyFatEstimate(10, 18, Male))
}

func TestCalorieTargetForDeficit(t *testing.T) {
	// 2009 - (7000/12)/7 = 2009 - 83.33 = 1925.67 -> 1926
	assert.Equal(t, 1926, CalorieTargetForDeficit(2009, 12))
	// One-week horizon removes a full 1000/day.
	assert.Equal(t, 1009, CalorieTargetForDeficit(2009, 1))
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("Male")
	assert.NoError(t, err)
	assert.Equal(t, Male, g)

	g, err = ParseGender(" FEMALE ")
	assert.NoError(t, err)
	assert.Equal(t, Female, g)

	_, err = ParseGender("other")
	assert.ErrorIs(t, err, ErrUnknownGender)
}

func TestValidActivityLevel(t *testing.T) {
	for _, l := range []string{"sedentary", "light", "moderate", "active", "very_active"} {
		assert.True(t, ValidActivityLevel(l), l)
	}
	assert.False(t, ValidActivityLevel("extreme"))
}
