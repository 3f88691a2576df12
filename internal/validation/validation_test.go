package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	property_dto "github.com/thomas0124/estate-portal/internal/dtos/property-dto"
	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
)

func validRequest() *property_dto.SavePropertyRequest {
	price := int64(35_000_000)
	return &property_dto.SavePropertyRequest{
		PropertyNumber: 1024,
		PropertyName:   "世田谷区桜丘3丁目戸建",
		PropertyType:   string(entity.TypeHouse),
		Status:         string(entity.StatusBrokerage),
		Price:          &price,
		CompanyName:    "株式会社サンプル不動産",
		HandlerName:    "田中",
	}
}

func TestValidateProperty_Valid(t *testing.T) {
	res := ValidateProperty(validRequest())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Nil(t, res.Err())
}

// All rules run; a request breaking several of them reports each one.
func TestValidateProperty_AccumulatesErrors(t *testing.T) {
	badPrice := int64(10_000_000_001)
	req := &property_dto.SavePropertyRequest{
		PropertyNumber: 1_000_000,
		PropertyName:   "   ",
		PropertyType:   "Castle",
		Status:         string(entity.StatusBrokerage),
		Price:          &badPrice,
		CompanyName:    strings.Repeat("あ", 201),
		HandlerName:    "",
	}

	res := ValidateProperty(req)

	assert.False(t, res.Valid)

	fields := make([]string, 0, len(res.Errors))
	for _, fe := range res.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"property_name", "property_number", "price", "company_name", "handler_name", "property_type",
	}, fields)
}

// Lengths count runes on the trimmed value, so a 100-character Japanese name
// with surrounding spaces is fine.
func TestValidateProperty_TrimmedRuneLength(t *testing.T) {
	req := validRequest()
	req.PropertyName = "  " + strings.Repeat("あ", 100) + "  "

	assert.True(t, ValidateProperty(req).Valid)

	req.PropertyName = strings.Repeat("あ", 101)
	assert.False(t, ValidateProperty(req).Valid)
}

func TestValidateProperty_PriceBounds(t *testing.T) {
	req := validRequest()

	zero := int64(0)
	req.Price = &zero
	assert.True(t, ValidateProperty(req).Valid)

	max := int64(10_000_000_000)
	req.Price = &max
	assert.True(t, ValidateProperty(req).Valid)

	over := int64(10_000_000_001)
	req.Price = &over
	assert.False(t, ValidateProperty(req).Valid)

	// An absent price is not an error.
	req.Price = nil
	assert.True(t, ValidateProperty(req).Valid)
}

func TestValidateProperty_PostContractNeedsBothDates(t *testing.T) {
	req := validRequest()
	req.Status = string(entity.StatusPostContract)

	res := ValidateProperty(req)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)

	contractDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	req.ContractDate = &contractDate

	res = ValidateProperty(req)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, "settlement_date", res.Errors[0].Field)

	settlementDate := time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local)
	req.SettlementDate = &settlementDate
	assert.True(t, ValidateProperty(req).Valid)
}

func TestValidateProperty_EnumFields(t *testing.T) {
	req := validRequest()

	bad := "Unknown"
	req.Characteristic = &bad
	assert.False(t, ValidateProperty(req).Valid)

	good := string(entity.CharacteristicInheritance)
	req.Characteristic = &good
	assert.True(t, ValidateProperty(req).Valid)

	req.Status = "Sold_Out"
	assert.False(t, ValidateProperty(req).Valid)
}

func TestValidateTask_PerFieldStatusSets(t *testing.T) {
	// Valid combination across different status sets.
	res := ValidateTask(&task_dto.UpdateTaskRequest{
		Reform:        &task_dto.TaskDetailInput{Status: string(entity.TaskNotRequired)},
		LoanProcedure: &task_dto.TaskDetailInput{Status: string(entity.LoanFormalApplied)},
		Registration:  &task_dto.TaskDetailInput{Status: string(entity.RegistrationArrangedVenue)},
	})
	assert.True(t, res.Valid)

	// Not_Required is not part of the loan procedure's set.
	res = ValidateTask(&task_dto.UpdateTaskRequest{
		LoanProcedure: &task_dto.TaskDetailInput{Status: string(entity.TaskNotRequired)},
	})
	assert.False(t, res.Valid)
	assert.Equal(t, "loan_procedure", res.Errors[0].Field)

	// Unassigned does not exist for post-processing.
	res = ValidateTask(&task_dto.UpdateTaskRequest{
		PostProcessing: &task_dto.TaskDetailInput{Status: string(entity.TaskUnassigned)},
	})
	assert.False(t, res.Valid)

	// Absent fields and empty statuses are not checked.
	res = ValidateTask(&task_dto.UpdateTaskRequest{
		Survey: &task_dto.TaskDetailInput{Notes: nil},
	})
	assert.True(t, res.Valid)
}
