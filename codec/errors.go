package codec

import "errors"

var (
	ErrUnknownMethod   = errors.New("unknown codec method")
	ErrNilImage        = errors.New("nil image")
	ErrShapeMismatch   = errors.New("plane does not fit raster side")
	ErrNonFiniteSignal = errors.New("non-finite value in band signal")
)
