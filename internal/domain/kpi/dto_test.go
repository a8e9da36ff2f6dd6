package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDefinitionRequest() CreateDefinitionRequest {
	return CreateDefinitionRequest{
		Code:        "SALES_TARGET",
		Name:        "Monthly sales target",
		MetricType:  "SALES_AMOUNT",
		Method:      "PERCENTAGE",
		TargetValue: d("50000000"),
		Weight:      40,
		MaxBonus:    d("300000"),
	}
}

func TestCreateDefinitionRequestValidate(t *testing.T) {
	valid := validDefinitionRequest()
	assert.NoError(t, valid.Validate())

	t.Run("zero target for ratio method", func(t *testing.T) {
		req := validDefinitionRequest()
		req.TargetValue = d("0")
		assert.Error(t, req.Validate())
	})

	t.Run("negative target for ratio method", func(t *testing.T) {
		req := validDefinitionRequest()
		req.Method = "TARGET_BASED"
		req.TargetValue = d("-10")
		assert.Error(t, req.Validate())
	})

	t.Run("range method needs max above min", func(t *testing.T) {
		req := validDefinitionRequest()
		req.Method = "RANGE_BASED"
		req.MinValue = d("100")
		req.MaxValue = d("100")
		assert.Error(t, req.Validate())
	})

	t.Run("inverse method with valid range", func(t *testing.T) {
		req := validDefinitionRequest()
		req.Method = "INVERSE"
		req.MinValue = d("0")
		req.MaxValue = d("10")
		req.TargetValue = d("0")
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown method", func(t *testing.T) {
		req := validDefinitionRequest()
		req.Method = "MAGIC"
		assert.Error(t, req.Validate())
	})

	t.Run("weight out of range", func(t *testing.T) {
		req := validDefinitionRequest()
		req.Weight = 120
		assert.Error(t, req.Validate())
	})

	t.Run("negative bonus per point", func(t *testing.T) {
		req := validDefinitionRequest()
		req.BonusPerPoint = d("-1")
		assert.Error(t, req.Validate())
	})
}

func TestCreateAssignmentRequestValidate(t *testing.T) {
	valid := CreateAssignmentRequest{
		EmployeeID:   "emp-1",
		DefinitionID: "def-1",
		StartDate:    "2026-01-01",
	}
	assert.NoError(t, valid.Validate())

	t.Run("bad start date", func(t *testing.T) {
		req := valid
		req.StartDate = "January 1"
		assert.Error(t, req.Validate())
	})

	t.Run("non-positive target override", func(t *testing.T) {
		req := valid
		zero := d("0")
		req.TargetOverride = &zero
		assert.Error(t, req.Validate())
	})
}

func TestRecordResultRequestValidate(t *testing.T) {
	valid := RecordResultRequest{
		EmployeeID:   "emp-1",
		DefinitionID: "def-1",
		Period:       "2026-08",
		ActualValue:  d("42000000"),
	}
	assert.NoError(t, valid.Validate())

	t.Run("negative actual", func(t *testing.T) {
		req := valid
		req.ActualValue = d("-1")
		assert.Error(t, req.Validate())
	})

	t.Run("missing period", func(t *testing.T) {
		req := valid
		req.Period = ""
		assert.Error(t, req.Validate())
	})
}
