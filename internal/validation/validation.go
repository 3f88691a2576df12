package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	property_dto "github.com/thomas0124/estate-portal/internal/dtos/property-dto"
	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

const (
	maxPropertyNumber = 1_000_000
	maxPrice          = 10_000_000_000
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Result is the outcome of a record-level validation run. All rules are
// checked; errors accumulate rather than short-circuit.
type Result struct {
	Valid  bool                    `json:"valid"`
	Errors []app_errors.FieldError `json:"errors,omitempty"`
}

// Err converts a failed result into the AppError services return. Nil when
// the result is valid.
func (r Result) Err() *app_errors.AppError {
	if r.Valid {
		return nil
	}
	return app_errors.NewValidationError(r.Errors)
}

// ValidateStruct runs the validator tags of a request DTO (admin requests
// use plain tag rules).
func ValidateStruct(req any) *app_errors.AppError {
	if err := validate.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func trimmedLenBetween(s string, min, max int) bool {
	l := len([]rune(strings.TrimSpace(s)))
	return l >= min && l <= max
}

func fieldError(field, reason, key string, params map[string]any) app_errors.FieldError {
	return app_errors.FieldError{Field: field, Reason: reason, MessageKey: key, Params: params}
}

// ValidateProperty checks a property record as a whole. The rules mirror
// the listing form: lengths are counted on the trimmed value, enum fields
// accept only their defined values, and a post-contract record must carry
// both lifecycle dates.
func ValidateProperty(req *property_dto.SavePropertyRequest) Result {
	var errs []app_errors.FieldError

	if !trimmedLenBetween(req.PropertyName, 1, 100) {
		errs = append(errs, fieldError("property_name", "length", "validation.property_name_length", nil))
	}

	if req.PropertyNumber != 0 && (req.PropertyNumber <= 0 || req.PropertyNumber >= maxPropertyNumber) {
		errs = append(errs, fieldError("property_number", "range", "validation.property_number", nil))
	}

	if req.Price != nil && (*req.Price < 0 || *req.Price > maxPrice) {
		errs = append(errs, fieldError("price", "range", "validation.price", nil))
	}

	if !trimmedLenBetween(req.CompanyName, 1, 200) {
		errs = append(errs, fieldError("company_name", "length", "validation.company_name_length", nil))
	}

	if !trimmedLenBetween(req.HandlerName, 1, 50) {
		errs = append(errs, fieldError("handler_name", "length", "validation.handler_name_length", nil))
	}

	if req.PropertyType != "" && !entity.ValidPropertyType(req.PropertyType) {
		errs = append(errs, fieldError("property_type", "enum", "validation.property_type", nil))
	}

	if req.Status != "" && !entity.ValidPropertyStatus(req.Status) {
		errs = append(errs, fieldError("status", "enum", "validation.property_status", nil))
	}

	if req.Characteristic != nil && *req.Characteristic != "" && !entity.ValidCharacteristic(*req.Characteristic) {
		errs = append(errs, fieldError("characteristic", "enum", "validation.characteristic", nil))
	}

	if req.AthomeNumber != nil && !trimmedLenBetween(*req.AthomeNumber, 0, 50) {
		errs = append(errs, fieldError("athome_number", "length", "validation.athome_number_length", nil))
	}

	if entity.PropertyStatus(req.Status) == entity.StatusPostContract {
		if req.ContractDate == nil {
			errs = append(errs, fieldError("contract_date", "required", "validation.contract_date_required", nil))
		}
		if req.SettlementDate == nil {
			errs = append(errs, fieldError("settlement_date", "required", "validation.settlement_date_required", nil))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateTask checks every checklist field present in the request against
// that field's own status set. An unrecognized status is reported under the
// checklist field's name.
func ValidateTask(req *task_dto.UpdateTaskRequest) Result {
	var errs []app_errors.FieldError

	check := func(field string, input *task_dto.TaskDetailInput, valid func(string) bool) {
		if input == nil || input.Status == "" {
			return
		}
		if !valid(input.Status) {
			errs = append(errs, fieldError(field, "enum", "validation.task_status", map[string]any{"field": field}))
		}
	}

	check("reform", req.Reform, entity.ValidTaskStatus)
	check("loan_procedure", req.LoanProcedure, entity.ValidLoanProcedureStatus)
	check("survey", req.Survey, entity.ValidTaskStatus)
	check("demolition", req.Demolition, entity.ValidTaskStatus)
	check("mortgage_cancellation", req.MortgageCancellation, entity.ValidMortgageCancellationStatus)
	check("registration", req.Registration, entity.ValidRegistrationStatus)
	check("post_processing", req.PostProcessing, entity.ValidPostProcessingStatus)

	return Result{Valid: len(errs) == 0, Errors: errs}
}
