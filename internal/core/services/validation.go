package services

import (
	"fmt"

	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/utils/csvutil"
	"github.com/go-playground/validator/v10"
)

// ValidationResult collects everything wrong with one input. A failed check
// appends a message; it never aborts the remaining checks, so callers get the
// full list in one pass.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func (r *ValidationResult) addError(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// Reason flattens the errors into a single human-readable string.
func (r *ValidationResult) Reason() string {
	if len(r.Errors) == 0 {
		return ""
	}
	reason := r.Errors[0]
	for _, e := range r.Errors[1:] {
		reason += "; " + e
	}
	return reason
}

// ValidationPipeline checks inputs before they reach a transaction. Every
// method returns a result describing the input; none of them returns a Go
// error, panics, or touches storage.
type ValidationPipeline struct {
	validate *validator.Validate
}

// NewValidationPipeline builds the pipeline around a shared validator
// instance.
func NewValidationPipeline() *ValidationPipeline {
	return &ValidationPipeline{validate: validator.New()}
}

func newResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// runTagValidation applies struct tag rules and folds violations into the
// result.
func (p *ValidationPipeline) runTagValidation(res *ValidationResult, v any) {
	err := p.validate.Struct(v)
	if err == nil {
		return
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.addError("input could not be validated")
		return
	}
	for _, fe := range validationErrs {
		res.addError(fmt.Sprintf("field %s failed rule %s", fe.Field(), fe.Tag()))
	}
}

// ValidateWorkerInput checks one create-style worker item.
func (p *ValidationPipeline) ValidateWorkerInput(req dto.CreateWorkerRequest) ValidationResult {
	res := newResult()
	p.runTagValidation(&res, req)
	if req.HireDate != "" {
		if _, err := csvutil.ParseDate(req.HireDate); err != nil {
			res.addError("hireDate must be a valid date in YYYY-MM-DD format")
		}
	}
	return res
}

// ValidateWorkerPatch checks one update-style worker item.
func (p *ValidationPipeline) ValidateWorkerPatch(patch dto.WorkerPatch) ValidationResult {
	res := newResult()
	p.runTagValidation(&res, patch)
	if patch.Name != nil && *patch.Name == "" {
		res.addError("name cannot be cleared")
	}
	if patch.HireDate != nil {
		if _, err := csvutil.ParseDate(*patch.HireDate); err != nil {
			res.addError("hireDate must be a valid date in YYYY-MM-DD format")
		}
	}
	return res
}

// ValidateDebtInput checks a new debt request.
func (p *ValidationPipeline) ValidateDebtInput(req dto.CreateDebtRequest) ValidationResult {
	res := newResult()
	p.runTagValidation(&res, req)
	if !req.Amount.IsPositive() {
		res.addError("amount must be greater than zero")
	}
	if req.InterestRate.IsNegative() {
		res.addError("interestRate cannot be negative")
	}
	var incurred string
	if req.DateIncurred != "" {
		if _, err := csvutil.ParseDate(req.DateIncurred); err != nil {
			res.addError("dateIncurred must be a valid date in YYYY-MM-DD format")
		} else {
			incurred = req.DateIncurred
		}
	}
	if req.DueDate != nil {
		due, err := csvutil.ParseDate(*req.DueDate)
		if err != nil {
			res.addError("dueDate must be a valid date in YYYY-MM-DD format")
		} else if incurred != "" {
			incurredDate, _ := csvutil.ParseDate(incurred)
			if due.Before(incurredDate) {
				res.addError("dueDate cannot be before dateIncurred")
			}
		}
	}
	return res
}

// ValidatePaymentInput checks a new payment request.
func (p *ValidationPipeline) ValidatePaymentInput(req dto.CreatePaymentRequest) ValidationResult {
	res := newResult()
	p.runTagValidation(&res, req)
	if !req.GrossPay.IsPositive() {
		res.addError("grossPay must be greater than zero")
	}
	if req.NetPay.IsNegative() {
		res.addError("netPay cannot be negative")
	}
	if req.TotalDebtDeduction.IsNegative() {
		res.addError("totalDebtDeduction cannot be negative")
	}
	if req.OtherDeductions.IsNegative() {
		res.addError("otherDeductions cannot be negative")
	}
	deductions := req.TotalDebtDeduction.Add(req.OtherDeductions)
	if deductions.GreaterThan(req.GrossPay) {
		res.addError("deductions cannot exceed grossPay")
	}
	if req.PaymentDate != "" {
		if _, err := csvutil.ParseDate(req.PaymentDate); err != nil {
			res.addError("paymentDate must be a valid date in YYYY-MM-DD format")
		}
	}
	return res
}

// ValidateAssignmentInput checks a new assignment request.
func (p *ValidationPipeline) ValidateAssignmentInput(req dto.CreateAssignmentRequest) ValidationResult {
	res := newResult()
	p.runTagValidation(&res, req)
	if req.LuwangCount.IsNegative() {
		res.addError("luwangCount cannot be negative")
	}
	if req.AssignmentDate != "" {
		if _, err := csvutil.ParseDate(req.AssignmentDate); err != nil {
			res.addError("assignmentDate must be a valid date in YYYY-MM-DD format")
		}
	}
	return res
}
