package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "request body binding error",
	ErrValidation:      "request validation error",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "request rate too high",

	// User error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect username or password",

	// Floor error codes
	ErrFloorNotFound:     "floor not found",
	ErrFloorAlreadyExist: "floor level already exists",

	// Room error codes
	ErrRoomNotFound:         "room not found",
	ErrRoomAlreadyExist:     "room number already exists",
	ErrRoomFull:             "room is already at full capacity",
	ErrRoomFieldManaged:     "occupancy and status are derived from student assignments",
	ErrRoomConflict:         "concurrent room occupancy update, please retry",
	ErrRoomCapacityTooSmall: "capacity cannot drop below current occupancy",

	// Student error codes
	ErrStudentNotFound:     "student not found",
	ErrStudentAlreadyExist: "student number already exists",
	ErrStudentInactive:     "cannot assign a room to an inactive student",

	// Payment error codes
	ErrPaymentNotFound:     "payment not found",
	ErrPaymentInvalidMonth: "billing month must be in YYYY-MM format",

	// Alert error codes
	ErrAlertNotFound: "alert not found",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// User error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Floor error codes
	ErrFloorNotFound:     StatusNotFound,
	ErrFloorAlreadyExist: StatusBadRequest,

	// Room error codes
	ErrRoomNotFound:         StatusNotFound,
	ErrRoomAlreadyExist:     StatusBadRequest,
	ErrRoomFull:             StatusBadRequest,
	ErrRoomFieldManaged:     StatusBadRequest,
	ErrRoomConflict:         StatusInternalServerError,
	ErrRoomCapacityTooSmall: StatusBadRequest,

	// Student error codes
	ErrStudentNotFound:     StatusNotFound,
	ErrStudentAlreadyExist: StatusBadRequest,
	ErrStudentInactive:     StatusBadRequest,

	// Payment error codes
	ErrPaymentNotFound:     StatusNotFound,
	ErrPaymentInvalidMonth: StatusBadRequest,

	// Alert error codes
	ErrAlertNotFound: StatusNotFound,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
