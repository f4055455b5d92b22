package models

import "errors"

// Sentinel business errors surfaced by the store and services. Handlers map
// these onto HTTP status codes; anything else is a generic store failure.
var (
	ErrNotFound            = errors.New("record not found")
	ErrOverpayment         = errors.New("payment exceeds invoice balance")
	ErrDuplicateAttendance = errors.New("attendance already recorded for labour on this date")
)
