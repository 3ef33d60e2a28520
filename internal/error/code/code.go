package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Floor error codes (102xxx).
const (
	// ErrFloorNotFound - 404: floor not found.
	ErrFloorNotFound int = iota + 102000
	// ErrFloorAlreadyExist - 400: floor already exists.
	ErrFloorAlreadyExist
)

// Room error codes (103xxx).
const (
	// ErrRoomNotFound - 404: room not found.
	ErrRoomNotFound int = iota + 103000
	// ErrRoomAlreadyExist - 400: room number already exists.
	ErrRoomAlreadyExist
	// ErrRoomFull - 400: room is already at capacity.
	ErrRoomFull
	// ErrRoomFieldManaged - 400: occupancy and status are derived fields.
	ErrRoomFieldManaged
	// ErrRoomConflict - 500: concurrent occupancy update conflict.
	ErrRoomConflict
	// ErrRoomCapacityTooSmall - 400: capacity below current occupancy.
	ErrRoomCapacityTooSmall
)

// Student error codes (104xxx).
const (
	// ErrStudentNotFound - 404: student not found.
	ErrStudentNotFound int = iota + 104000
	// ErrStudentAlreadyExist - 400: student number already exists.
	ErrStudentAlreadyExist
	// ErrStudentInactive - 400: inactive students cannot hold a room.
	ErrStudentInactive
)

// Payment error codes (105xxx).
const (
	// ErrPaymentNotFound - 404: payment not found.
	ErrPaymentNotFound int = iota + 105000
	// ErrPaymentInvalidMonth - 400: billing month must be YYYY-MM.
	ErrPaymentInvalidMonth
)

// Alert error codes (106xxx).
const (
	// ErrAlertNotFound - 404: alert not found.
	ErrAlertNotFound int = iota + 106000
)

// Database error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
