package overtime

import "errors"

var (
	ErrOvertimeNotFound       = errors.New("overtime request not found")
	ErrOvertimeTypeNotFound   = errors.New("overtime type not found")
	ErrOvertimeTypeCodeExists = errors.New("overtime type code already exists")
)
