package kpi

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricType enum - what real-world measurement feeds the KPI.
type MetricType string

const (
	MetricSalesAmount    MetricType = "SALES_AMOUNT"
	MetricReceiptCount   MetricType = "RECEIPT_COUNT"
	MetricAverageCheck   MetricType = "AVERAGE_CHECK"
	MetricAttendance     MetricType = "ATTENDANCE"
	MetricErrorCount     MetricType = "ERROR_COUNT"
	MetricCustomerRating MetricType = "CUSTOMER_RATING"
	MetricCustom         MetricType = "CUSTOM"
)

// CalculationMethod enum - how an actual value is scored against the bounds.
type CalculationMethod string

const (
	MethodPercentage  CalculationMethod = "PERCENTAGE"
	MethodTargetBased CalculationMethod = "TARGET_BASED"
	MethodRangeBased  CalculationMethod = "RANGE_BASED"
	MethodInverse     CalculationMethod = "INVERSE"
)

var hundred = decimal.NewFromInt(100)

// Definition is a reusable scoring formula, independent of any employee.
// Which of TargetValue/MinValue/MaxValue are meaningful depends on Method.
type Definition struct {
	ID              string
	Code            string
	Name            string
	MetricType      MetricType
	Method          CalculationMethod
	TargetValue     decimal.Decimal
	MinValue        decimal.Decimal
	MaxValue        decimal.Decimal
	Weight          int
	BonusPerPoint   decimal.Decimal
	MaxBonus        decimal.Decimal
	ApplicableRoles []string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CalculateAchievement scores an actual measurement on a 0-100 scale.
// The result is clamped to [0,100] regardless of method.
func (d Definition) CalculateAchievement(actual decimal.Decimal) decimal.Decimal {
	var rate decimal.Decimal

	switch d.Method {
	case MethodPercentage:
		if !d.TargetValue.IsPositive() {
			return decimal.Zero
		}
		rate = actual.Div(d.TargetValue).Mul(hundred)
		if rate.GreaterThan(hundred) {
			rate = hundred
		}
	case MethodTargetBased:
		if !d.TargetValue.IsPositive() {
			return decimal.Zero
		}
		rate = actual.Div(d.TargetValue).Mul(hundred)
	case MethodRangeBased:
		rate = interpolate(actual, d.MinValue, d.MaxValue)
	case MethodInverse:
		// Lower is better, e.g. error counts.
		rate = hundred.Sub(interpolate(actual, d.MinValue, d.MaxValue))
	default:
		return decimal.Zero
	}

	return clampRate(rate)
}

// CalculateBonus derives the bonus earned for an actual measurement. The
// per-point rate is used when configured, otherwise the bonus scales the cap
// by the achievement rate. Either way the cap bounds the result.
func (d Definition) CalculateBonus(actual decimal.Decimal) decimal.Decimal {
	rate := d.CalculateAchievement(actual)

	var bonus decimal.Decimal
	if d.BonusPerPoint.IsPositive() {
		bonus = rate.Mul(d.BonusPerPoint)
	} else {
		bonus = rate.Div(hundred).Mul(d.MaxBonus)
	}

	if d.MaxBonus.IsPositive() && bonus.GreaterThan(d.MaxBonus) {
		return d.MaxBonus
	}
	return bonus
}

// AppliesToRole reports whether the definition is scoped to the given role.
// An empty role list means the definition applies to everyone.
func (d Definition) AppliesToRole(role string) bool {
	if len(d.ApplicableRoles) == 0 {
		return true
	}
	for _, r := range d.ApplicableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// interpolate maps actual onto [0,100] linearly between min and max.
func interpolate(actual, min, max decimal.Decimal) decimal.Decimal {
	if actual.LessThanOrEqual(min) {
		return decimal.Zero
	}
	if actual.GreaterThanOrEqual(max) {
		return hundred
	}
	span := max.Sub(min)
	if !span.IsPositive() {
		return decimal.Zero
	}
	return actual.Sub(min).Div(span).Mul(hundred)
}

func clampRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(hundred) {
		return hundred
	}
	return rate
}

// Assignment binds a Definition to an employee for a time window, optionally
// overriding the definition's target, weight and bonus cap.
type Assignment struct {
	ID               string
	EmployeeID       string
	DefinitionID     string
	TargetOverride   *decimal.Decimal
	WeightOverride   *int
	MaxBonusOverride *decimal.Decimal
	StartDate        time.Time
	EndDate          *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CoversDate reports whether t falls within [StartDate, EndDate]. An open
// EndDate is unbounded.
func (a Assignment) CoversDate(t time.Time) bool {
	if t.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && t.After(*a.EndDate) {
		return false
	}
	return true
}

// Apply returns a copy of the definition with the assignment's overrides in
// effect. Override values take precedence when resolving the effective
// parameters for a computation.
func (a Assignment) Apply(d Definition) Definition {
	if a.TargetOverride != nil {
		d.TargetValue = *a.TargetOverride
	}
	if a.WeightOverride != nil {
		d.Weight = *a.WeightOverride
	}
	if a.MaxBonusOverride != nil {
		d.MaxBonus = *a.MaxBonusOverride
	}
	return d
}

// ResultSnapshot freezes definition metadata at computation time so historic
// results stay stable if the definition later changes.
type ResultSnapshot struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	MetricType MetricType `json:"metric_type"`
	Weight     int        `json:"weight"`
}

// Result is the computed outcome of one definition for one employee in one
// calendar period. Exactly one result exists per (employee, definition,
// period); recomputation overwrites it.
type Result struct {
	ID              string
	EmployeeID      string
	DefinitionID    string
	Period          string
	PeriodYear      int
	PeriodMonth     int
	TargetValue     decimal.Decimal
	ActualValue     decimal.Decimal
	AchievementRate decimal.Decimal
	BonusEarned     decimal.Decimal
	Snapshot        ResultSnapshot
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
