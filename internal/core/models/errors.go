package models

import "errors"

var (
	// Container errors

	ErrNilComponent       = errors.New("component is nil")
	ErrDuplicateComponent = errors.New("component already attached")

	// Registry and configuration errors

	ErrUnknownComponentType  = errors.New("unknown component type")
	ErrTypeAlreadyRegistered = errors.New("component type already registered")
	ErrInvalidEntry          = errors.New("invalid component entry")
	ErrInvalidComponentData  = errors.New("invalid component data")
)
