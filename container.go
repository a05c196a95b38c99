// Package gameioc is a small dependency injection container meant to be configured once
// at startup and then used from a game's single-threaded update loop.
//
// Services are registered by type, either as an implementation type built through its
// declared constructors, as a factory, or as an already built instance. Resolve walks the
// dependency graph, picks constructors, and caches Singleton results.
//
// A Container is not safe for concurrent use. Finish every registration before the first
// Resolve, and call it from one goroutine.
package gameioc

import (
	"fmt"
	"reflect"
)

// Container is the main object to register and resolve dependencies.
//
// As you can see, most of the API is exposed as function calls instead of
// methods. This is because Go does not allow methods with type parameters.
// The reflect.Type based operations are methods.
type Container struct {
	// One descriptor per service type. Registering a type again replaces it.
	registry map[reflect.Type]*descriptor
	// Realized Singleton instances, keyed by service type.
	instances map[reflect.Type]any
	// Declared constructors per implementation type, in declaration order.
	constructors map[reflect.Type][]constructor
	// Service types currently being built, outermost first. Factories re-enter
	// Resolve through the Container, so the stack has to live here.
	resolving []reflect.Type
}

type descriptor struct {
	serviceType        reflect.Type
	implementationType reflect.Type
	lifetime           Lifetime
	factory            func(c *Container) (any, error)
}

// Factory builds a service instance. It receives the Container so it can resolve
// further dependencies.
type Factory[T any] func(c *Container) (T, error)

// NewContainer creates an empty Container. The Container registers itself as a
// *Container instance, so constructors may ask for it.
func NewContainer() *Container {
	c := &Container{
		registry:     map[reflect.Type]*descriptor{},
		instances:    map[reflect.Type]any{},
		constructors: map[reflect.Type][]constructor{},
	}

	c.register(&descriptor{
		serviceType:        reflect.TypeFor[*Container](),
		implementationType: reflect.TypeFor[*Container](),
		lifetime:           Singleton,
	})
	c.instances[reflect.TypeFor[*Container]()] = c

	return c
}

// Replaces any previous descriptor and drops its cached instance, so the latest
// registration is the one in effect.
func (c *Container) register(d *descriptor) {
	c.registry[d.serviceType] = d
	delete(c.instances, d.serviceType)
}

// RegisterSelf registers T as its own implementation. It is the same as Register[T, T].
func RegisterSelf[T any](c *Container, lifetime Lifetime) error {
	return Register[T, T](c, lifetime)
}

// Register maps TService to TImplementation. On resolution TImplementation is built
// through the constructor selection described in Resolve.
//
// TImplementation must be assignable to TService, otherwise ErrNotAssignable is returned.
//
// If Register is called multiple times for the same TService, the last registration is
// considered for resolution.
func Register[TService any, TImplementation any](c *Container, lifetime Lifetime) error {
	serviceType := reflect.TypeFor[TService]()
	implementationType := reflect.TypeFor[TImplementation]()

	if !lifetime.valid() {
		return fmt.Errorf("%w: unknown lifetime %d for %v", ErrInvalidArgument, lifetime, serviceType)
	}
	if !implementationType.AssignableTo(serviceType) {
		return fmt.Errorf("%w: %v cannot be used as %v", ErrNotAssignable, implementationType, serviceType)
	}

	c.register(&descriptor{
		serviceType:        serviceType,
		implementationType: implementationType,
		lifetime:           lifetime,
	})
	return nil
}

// RegisterFactory registers a factory for TService. The factory takes precedence over
// constructors: a service registered this way is never built through constructor selection.
func RegisterFactory[TService any](c *Container, factory Factory[TService], lifetime Lifetime) error {
	serviceType := reflect.TypeFor[TService]()

	if factory == nil {
		return fmt.Errorf("%w: factory for %v is nil", ErrInvalidArgument, serviceType)
	}
	if !lifetime.valid() {
		return fmt.Errorf("%w: unknown lifetime %d for %v", ErrInvalidArgument, lifetime, serviceType)
	}

	c.register(&descriptor{
		serviceType: serviceType,
		lifetime:    lifetime,
		factory: func(c *Container) (any, error) {
			instance, err := factory(c)
			if err != nil {
				return nil, err
			}
			return instance, nil
		},
	})
	return nil
}

// RegisterInstance registers an already built instance as a Singleton for TService.
// The implementation type is the runtime type of instance.
func RegisterInstance[TService any](c *Container, instance TService) error {
	serviceType := reflect.TypeFor[TService]()

	if isNil(instance) {
		return fmt.Errorf("%w: instance for %v is nil", ErrInvalidArgument, serviceType)
	}

	c.register(&descriptor{
		serviceType:        serviceType,
		implementationType: reflect.TypeOf(instance),
		lifetime:           Singleton,
	})
	c.instances[serviceType] = instance
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
