package kpi

import (
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
)

var metricTypes = []string{
	string(MetricSalesAmount), string(MetricReceiptCount), string(MetricAverageCheck),
	string(MetricAttendance), string(MetricErrorCount), string(MetricCustomerRating),
	string(MetricCustom),
}

var calculationMethods = []string{
	string(MethodPercentage), string(MethodTargetBased),
	string(MethodRangeBased), string(MethodInverse),
}

type CreateDefinitionRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	MetricType      string          `json:"metric_type"`
	Method          string          `json:"calculation_method"`
	TargetValue     decimal.Decimal `json:"target_value"`
	MinValue        decimal.Decimal `json:"min_value"`
	MaxValue        decimal.Decimal `json:"max_value"`
	Weight          int             `json:"weight"`
	BonusPerPoint   decimal.Decimal `json:"bonus_per_point"`
	MaxBonus        decimal.Decimal `json:"max_bonus"`
	ApplicableRoles []string        `json:"applicable_roles,omitempty"`
}

func (r *CreateDefinitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.MetricType, metricTypes) {
		errs = append(errs, validator.ValidationError{Field: "metric_type", Message: "invalid metric type"})
	}
	if !validator.IsInSlice(r.Method, calculationMethods) {
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "invalid calculation method"})
	}
	if r.Weight < 0 || r.Weight > 100 {
		errs = append(errs, validator.ValidationError{Field: "weight", Message: "must be between 0 and 100"})
	}
	if r.BonusPerPoint.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus_per_point", Message: "must be non-negative"})
	}
	if r.MaxBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_bonus", Message: "must be non-negative"})
	}

	// A zero target would make the ratio methods divide by zero; such
	// definitions are rejected outright.
	switch CalculationMethod(r.Method) {
	case MethodPercentage, MethodTargetBased:
		if !r.TargetValue.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "target_value", Message: "must be positive for this calculation method"})
		}
	case MethodRangeBased, MethodInverse:
		if !r.MaxValue.GreaterThan(r.MinValue) {
			errs = append(errs, validator.ValidationError{Field: "max_value", Message: "must be greater than min_value"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DefinitionResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	MetricType      string          `json:"metric_type"`
	Method          string          `json:"calculation_method"`
	TargetValue     decimal.Decimal `json:"target_value"`
	MinValue        decimal.Decimal `json:"min_value"`
	MaxValue        decimal.Decimal `json:"max_value"`
	Weight          int             `json:"weight"`
	BonusPerPoint   decimal.Decimal `json:"bonus_per_point"`
	MaxBonus        decimal.Decimal `json:"max_bonus"`
	ApplicableRoles []string        `json:"applicable_roles"`
	IsActive        bool            `json:"is_active"`
}

type CreateAssignmentRequest struct {
	EmployeeID       string           `json:"employee_id"`
	DefinitionID     string           `json:"definition_id"`
	TargetOverride   *decimal.Decimal `json:"target_override,omitempty"`
	WeightOverride   *int             `json:"weight_override,omitempty"`
	MaxBonusOverride *decimal.Decimal `json:"max_bonus_override,omitempty"`
	StartDate        string           `json:"start_date"`
	EndDate          *string          `json:"end_date,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DefinitionID) {
		errs = append(errs, validator.ValidationError{Field: "definition_id", Message: "is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}
	if r.TargetOverride != nil && !r.TargetOverride.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "target_override", Message: "must be positive"})
	}
	if r.WeightOverride != nil && (*r.WeightOverride < 0 || *r.WeightOverride > 100) {
		errs = append(errs, validator.ValidationError{Field: "weight_override", Message: "must be between 0 and 100"})
	}
	if r.MaxBonusOverride != nil && r.MaxBonusOverride.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_bonus_override", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID               string           `json:"id"`
	EmployeeID       string           `json:"employee_id"`
	DefinitionID     string           `json:"definition_id"`
	TargetOverride   *decimal.Decimal `json:"target_override,omitempty"`
	WeightOverride   *int             `json:"weight_override,omitempty"`
	MaxBonusOverride *decimal.Decimal `json:"max_bonus_override,omitempty"`
	StartDate        string           `json:"start_date"`
	EndDate          *string          `json:"end_date,omitempty"`
	IsActive         bool             `json:"is_active"`
}

type RecordResultRequest struct {
	EmployeeID   string          `json:"employee_id"`
	DefinitionID string          `json:"definition_id"`
	Period       string          `json:"period"`
	ActualValue  decimal.Decimal `json:"actual_value"`
}

func (r *RecordResultRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DefinitionID) {
		errs = append(errs, validator.ValidationError{Field: "definition_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	}
	if r.ActualValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "actual_value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResultResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	DefinitionID    string          `json:"definition_id"`
	Period          string          `json:"period"`
	KPICode         string          `json:"kpi_code"`
	KPIName         string          `json:"kpi_name"`
	MetricType      string          `json:"metric_type"`
	Weight          int             `json:"weight"`
	TargetValue     decimal.Decimal `json:"target_value"`
	ActualValue     decimal.Decimal `json:"actual_value"`
	AchievementRate decimal.Decimal `json:"achievement_rate"`
	BonusEarned     decimal.Decimal `json:"bonus_earned"`
}

type MonthlyBonusResponse struct {
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	TotalBonus decimal.Decimal `json:"total_bonus"`
}
