package kpi

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateAchievementPercentage(t *testing.T) {
	def := Definition{
		Method:      MethodPercentage,
		TargetValue: d("200"),
	}

	tests := []struct {
		name   string
		actual string
		want   string
	}{
		{"zero actual", "0", "0"},
		{"half of target", "100", "50"},
		{"exactly target", "200", "100"},
		{"over target is capped", "300", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := def.CalculateAchievement(d(tt.actual))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculateAchievementTargetBased(t *testing.T) {
	def := Definition{
		Method:      MethodTargetBased,
		TargetValue: d("200"),
	}

	// Same ratio as PERCENTAGE; the difference only matters past the
	// target, where the final clamp still bounds the rate at 100.
	assert.True(t, d("50").Equal(def.CalculateAchievement(d("100"))))
	assert.True(t, d("100").Equal(def.CalculateAchievement(d("200"))))
	assert.True(t, d("100").Equal(def.CalculateAchievement(d("500"))))
}

func TestCalculateAchievementNonPositiveTarget(t *testing.T) {
	for _, method := range []CalculationMethod{MethodPercentage, MethodTargetBased} {
		def := Definition{Method: method, TargetValue: decimal.Zero}
		assert.True(t, def.CalculateAchievement(d("100")).IsZero(), "method %s", method)
	}
}

func TestCalculateAchievementRangeBased(t *testing.T) {
	def := Definition{
		Method:   MethodRangeBased,
		MinValue: d("50"),
		MaxValue: d("150"),
	}

	tests := []struct {
		name   string
		actual string
		want   string
	}{
		{"below min", "30", "0"},
		{"at min", "50", "0"},
		{"midpoint", "100", "50"},
		{"at max", "150", "100"},
		{"above max", "200", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := def.CalculateAchievement(d(tt.actual))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculateAchievementInverse(t *testing.T) {
	// Error count: 0 errors is perfect, 10 or more is zero.
	def := Definition{
		Method:   MethodInverse,
		MinValue: d("0"),
		MaxValue: d("10"),
	}

	assert.True(t, d("100").Equal(def.CalculateAchievement(d("0"))))
	assert.True(t, d("70").Equal(def.CalculateAchievement(d("3"))))
	assert.True(t, d("0").Equal(def.CalculateAchievement(d("10"))))
	assert.True(t, d("0").Equal(def.CalculateAchievement(d("25"))))
}

func TestCalculateAchievementUnknownMethod(t *testing.T) {
	def := Definition{Method: CalculationMethod("WEIRD"), TargetValue: d("100")}
	assert.True(t, def.CalculateAchievement(d("100")).IsZero())
}

func TestCalculateBonusScalesCap(t *testing.T) {
	// Range 50-150, actual 100 scores 50%; with a 100,000 cap and no
	// per-point rate the bonus is half the cap.
	def := Definition{
		Method:   MethodRangeBased,
		MinValue: d("50"),
		MaxValue: d("150"),
		MaxBonus: d("100000"),
	}

	bonus := def.CalculateBonus(d("100"))
	assert.True(t, d("50000").Equal(bonus), "got %s", bonus)
}

func TestCalculateBonusPerPoint(t *testing.T) {
	def := Definition{
		Method:        MethodPercentage,
		TargetValue:   d("100"),
		BonusPerPoint: d("1000"),
		MaxBonus:      d("80000"),
	}

	// 60% of target: 60 points * 1000 = 60,000, under the cap.
	assert.True(t, d("60000").Equal(def.CalculateBonus(d("60"))))

	// Full achievement would earn 100,000 but the cap bounds it.
	assert.True(t, d("80000").Equal(def.CalculateBonus(d("100"))))
}

func TestCalculateBonusNoCap(t *testing.T) {
	def := Definition{
		Method:        MethodPercentage,
		TargetValue:   d("100"),
		BonusPerPoint: d("500"),
	}

	// Zero cap means uncapped per-point bonus.
	assert.True(t, d("50000").Equal(def.CalculateBonus(d("100"))))
}

func TestCalculateBonusNeverExceedsCap(t *testing.T) {
	defs := []Definition{
		{Method: MethodTargetBased, TargetValue: d("10"), MaxBonus: d("25000")},
		{Method: MethodPercentage, TargetValue: d("10"), BonusPerPoint: d("9999"), MaxBonus: d("25000")},
		{Method: MethodInverse, MinValue: d("0"), MaxValue: d("5"), MaxBonus: d("25000")},
	}
	actuals := []string{"0", "3", "10", "1000000"}

	for _, def := range defs {
		for _, actual := range actuals {
			bonus := def.CalculateBonus(d(actual))
			assert.True(t, bonus.LessThanOrEqual(def.MaxBonus),
				"method %s actual %s: bonus %s over cap", def.Method, actual, bonus)
			assert.False(t, bonus.IsNegative())
		}
	}
}

func TestAppliesToRole(t *testing.T) {
	def := Definition{ApplicableRoles: []string{"cashier", "sales"}}
	assert.True(t, def.AppliesToRole("cashier"))
	assert.False(t, def.AppliesToRole("warehouse"))

	unscoped := Definition{}
	assert.True(t, unscoped.AppliesToRole("warehouse"))
}

func TestAssignmentCoversDate(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	open := Assignment{StartDate: start}
	assert.True(t, open.CoversDate(start))
	assert.True(t, open.CoversDate(start.AddDate(5, 0, 0)))
	assert.False(t, open.CoversDate(start.AddDate(0, 0, -1)))

	bounded := Assignment{StartDate: start, EndDate: &end}
	assert.True(t, bounded.CoversDate(end))
	assert.False(t, bounded.CoversDate(end.AddDate(0, 0, 1)))
}

func TestAssignmentApply(t *testing.T) {
	def := Definition{
		TargetValue: d("100"),
		Weight:      30,
		MaxBonus:    d("50000"),
	}

	target := d("200")
	weight := 50
	a := Assignment{
		TargetOverride: &target,
		WeightOverride: &weight,
	}

	applied := a.Apply(def)
	assert.True(t, d("200").Equal(applied.TargetValue))
	assert.Equal(t, 50, applied.Weight)
	// No override: the definition's own cap stands.
	assert.True(t, d("50000").Equal(applied.MaxBonus))

	// The original definition is untouched.
	assert.True(t, d("100").Equal(def.TargetValue))
	assert.Equal(t, 30, def.Weight)
}
