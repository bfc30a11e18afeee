package loader

import "errors"

var (
	ErrUnknownCity         = errors.New("no dataset registered for city")
	ErrDatasetNotFound     = errors.New("dataset file not found")
	ErrMalformedDataset    = errors.New("malformed dataset file")
	ErrMissingColumn       = errors.New("mandatory column missing")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
)
