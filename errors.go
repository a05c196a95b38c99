package gameioc

import "errors"

var (
	// ErrInvalidArgument is returned when a registration input is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotAssignable is returned by Register when the implementation type cannot be used
	// where the service type is expected.
	ErrNotAssignable = errors.New("implementation type is not assignable to service type")
	// ErrInvalidConstructor is returned by DeclareConstructors for values that are not usable
	// constructor functions.
	ErrInvalidConstructor = errors.New("constructor must be a non-variadic function returning exactly one value, or a value and an error")
	// ErrServiceNotRegistered is returned when resolving a type that has no registration.
	ErrServiceNotRegistered = errors.New("service not registered")
	// ErrConstructorResolution is returned when an implementation type has no constructor,
	// or none whose parameters are all registered.
	ErrConstructorResolution = errors.New("no usable constructor")
	// ErrCircularDependency is returned when a type depends on itself during a single resolution.
	ErrCircularDependency = errors.New("circular dependency detected")
)
