package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrActivityNotFound = errors.New("activity for this date doesn't exist")
	ErrInvalidToken     = errors.New("invalid token")
	// Concurrent write on the same user's stats; retried by services, never returned to clients
	ErrConflict = errors.New("concurrent update conflict")

	ErrValidation   = errors.New("validation error")
	ErrInvalidHabit = errors.New("unknown habit type, use exercise, diet or skinCare")
	ErrInvalidDate  = errors.New("invalid date, use YYYY-MM-DD")
	ErrDateInFuture = errors.New("activity can't be logged for a future date")
)
