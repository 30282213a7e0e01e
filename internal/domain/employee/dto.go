package employee

import (
	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string  `json:"employee_id"`
	DeviceMAC  *string `json:"device_mac,omitempty"`
	FullName   string  `json:"full_name"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.DeviceMAC != nil && !validator.IsValidDeviceMAC(*r.DeviceMAC) {
		errs = append(errs, validator.ValidationError{Field: "device_mac", Message: "must be a MAC address (AA:BB:CC:DD:EE:FF)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	DeviceMAC  *string `json:"device_mac,omitempty"`
	FullName   string  `json:"full_name"`
	CreatedAt  string  `json:"created_at"`
}
