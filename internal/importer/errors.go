package importer

import "errors"

var (
	// ErrInvalidAmount is returned for an empty or non-numeric amount field.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate is returned when a date field is not DD/MM/YYYY.
	ErrInvalidDate = errors.New("invalid date")
	// ErrMissingColumn is returned when a row has no value for a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnknownEncoding is returned for an unsupported input charset name.
	ErrUnknownEncoding = errors.New("unknown encoding")
)
