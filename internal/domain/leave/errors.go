package leave

import "errors"

var (
	ErrLeaveTypeNotFound         = errors.New("leave type not found")
	ErrLeaveTypeNameExists       = errors.New("leave type name already exists")
	ErrLeaveQuotaNotFound        = errors.New("leave quota not found")
	ErrLeaveQuotaExists          = errors.New("leave quota already set for this employee, type and year")
	ErrApplicationNotFound       = errors.New("leave application not found")
	ErrApplicationAlreadyDecided = errors.New("leave application already approved or rejected")
	ErrTotalDaysMismatch         = errors.New("total days does not match the inclusive date span")
	ErrInvalidDateRange          = errors.New("end date must not be before start date")
)
