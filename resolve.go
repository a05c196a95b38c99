package gameioc

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/victormf2/gameioc/internal"
)

// Resolve returns an instance of T with all of its dependencies resolved.
//
// If T was registered as Singleton, the first resolved instance is cached and returned
// on every later call. If T was registered as Transient, a new instance is built each time.
//
// Instances are built by the registered factory when there is one. Otherwise the
// implementation type is built through its constructors: a parameterless constructor is
// always preferred, and among the others the one with the most parameters, all registered,
// is used. Parameters are resolved recursively in declaration order.
//
// Nothing is cached when resolution fails.
func Resolve[T any](c *Container) (T, error) {
	var zero T // small trick since x := T{} is not possible
	instance, err := c.ResolveType(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}
	return instance.(T), nil
}

// ResolveType is the reflect.Type counterpart of Resolve.
func (c *Container) ResolveType(serviceType reflect.Type) (any, error) {
	descriptor, found := c.registry[serviceType]
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrServiceNotRegistered, serviceType)
	}

	if descriptor.lifetime == Singleton {
		if cachedInstance, found := c.instances[serviceType]; found {
			return cachedInstance, nil
		}
	}

	if slices.Contains(c.resolving, serviceType) {
		// We know it's a circular dependency because resolution was already started for
		// serviceType up in the stack.
		return nil, fmt.Errorf("%w: %s", ErrCircularDependency, dependencyGraphString(append(slices.Clip(c.resolving), serviceType)))
	}

	c.resolving = append(c.resolving, serviceType)
	defer func() {
		c.resolving = c.resolving[:len(c.resolving)-1]
	}()

	instance, err := c.instantiate(descriptor)
	if err != nil {
		return nil, err
	}

	if descriptor.lifetime == Singleton {
		c.instances[serviceType] = instance
	}

	return instance, nil
}

func (c *Container) instantiate(d *descriptor) (any, error) {
	if d.factory != nil {
		instance, err := d.factory(c)
		if err != nil {
			if errors.Is(err, ErrCircularDependency) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to resolve a value for type %v: %w", d.serviceType, err)
		}
		return instance, nil
	}

	ctor, err := c.selectConstructor(d.implementationType)
	if err != nil {
		return nil, err
	}

	callArguments := make([]reflect.Value, len(ctor.arguments))
	for argumentIndex, argumentType := range ctor.arguments {
		argument, err := c.ResolveType(argumentType)
		if err != nil {
			// Helping with more concise error message in case of circular dependency detection
			if errors.Is(err, ErrCircularDependency) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to resolve argument %v of constructor for %v: %w", argumentIndex, d.implementationType, err)
		}
		callArguments[argumentIndex] = argumentValue(argument, argumentType)
	}

	value, err := ctor.call(callArguments)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve a value for type %v: %w", d.implementationType, err)
	}

	return asService(value, d.serviceType).Interface(), nil
}

// Register accepts implementations that are assignable without being identical, like a
// named slice for its unnamed type. The result is stored as the service type so that
// Resolve[T] can always assert it to T.
func asService(value reflect.Value, serviceType reflect.Type) reflect.Value {
	if value.Type() == serviceType {
		return value
	}
	service := reflect.New(serviceType).Elem()
	service.Set(value)
	return service
}

// Resolved nil instances become the zero value of the parameter type, since
// reflect.ValueOf(nil) cannot be passed to Call.
func argumentValue(argument any, argumentType reflect.Type) reflect.Value {
	if argument == nil {
		return reflect.Zero(argumentType)
	}
	return reflect.ValueOf(argument)
}

func dependencyGraphString(stack []reflect.Type) string {
	typesString := internal.Map(
		stack,
		func(t reflect.Type) string { return fmt.Sprintf("%v", t) },
	)
	return strings.Join(typesString, " -> ")
}
