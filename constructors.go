package gameioc

import (
	"fmt"
	"reflect"

	"github.com/victormf2/gameioc/internal"
)

type constructor struct {
	function     reflect.Value
	arguments    []reflect.Type
	returnsError bool
}

// DeclareConstructors declares the constructors of TImplementation, used when a service
// registered with Register or RegisterSelf has TImplementation as its implementation.
//
// Each constructor must be a non-variadic function returning exactly TImplementation, or a
// (TImplementation, error) tuple. Every parameter is resolved as a service type.
//
// Calling DeclareConstructors again appends to the previous declarations. Declaration order
// is the enumeration order used to break ties during constructor selection. Either every
// constructor is accepted or none is.
//
// A struct or pointer to struct type without declared constructors has an implicit
// parameterless constructor producing its zero value (or a pointer to a new zero value).
func DeclareConstructors[TImplementation any](c *Container, constructors ...any) error {
	implementationType := reflect.TypeFor[TImplementation]()

	parsed := make([]constructor, 0, len(constructors))
	for index, constructorFunction := range constructors {
		ctor, err := parseConstructor(constructorFunction, implementationType)
		if err != nil {
			return fmt.Errorf("constructor %d of %v: %w", index, implementationType, err)
		}
		parsed = append(parsed, ctor)
	}

	c.constructors[implementationType] = append(c.constructors[implementationType], parsed...)
	return nil
}

func parseConstructor(constructorFunction any, implementationType reflect.Type) (constructor, error) {
	if constructorFunction == nil {
		return constructor{}, ErrInvalidConstructor
	}

	function := reflect.ValueOf(constructorFunction)
	functionType := function.Type()

	if functionType.Kind() != reflect.Func || function.IsNil() || functionType.IsVariadic() {
		return constructor{}, ErrInvalidConstructor
	}
	if functionType.NumOut() < 1 || functionType.NumOut() > 2 {
		return constructor{}, ErrInvalidConstructor
	}
	if functionType.NumOut() == 2 && functionType.Out(1) != reflect.TypeFor[error]() {
		return constructor{}, ErrInvalidConstructor
	}
	if functionType.Out(0) != implementationType {
		return constructor{}, fmt.Errorf("%w: returns %v", ErrInvalidConstructor, functionType.Out(0))
	}

	arguments := make([]reflect.Type, functionType.NumIn())
	for i := range functionType.NumIn() {
		arguments[i] = functionType.In(i)
	}

	return constructor{
		function:     function,
		arguments:    arguments,
		returnsError: functionType.NumOut() == 2,
	}, nil
}

func implicitConstructor(implementationType reflect.Type) (constructor, bool) {
	var build func() reflect.Value
	switch {
	case implementationType.Kind() == reflect.Struct:
		build = func() reflect.Value { return reflect.New(implementationType).Elem() }
	case implementationType.Kind() == reflect.Pointer && implementationType.Elem().Kind() == reflect.Struct:
		build = func() reflect.Value { return reflect.New(implementationType.Elem()) }
	default:
		return constructor{}, false
	}

	functionType := reflect.FuncOf(nil, []reflect.Type{implementationType}, false)
	function := reflect.MakeFunc(functionType, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{build()}
	})
	return constructor{function: function, arguments: []reflect.Type{}}, true
}

func (c *Container) constructorsOf(implementationType reflect.Type) []constructor {
	if declared := c.constructors[implementationType]; len(declared) > 0 {
		return declared
	}
	if implicit, ok := implicitConstructor(implementationType); ok {
		return []constructor{implicit}
	}
	return nil
}

// Picks the constructor used to build implementationType:
//   - a parameterless constructor always wins;
//   - otherwise only constructors whose parameter types are all registered are kept,
//     and the one with the most parameters wins, the first declared on ties.
func (c *Container) selectConstructor(implementationType reflect.Type) (constructor, error) {
	candidates := c.constructorsOf(implementationType)
	if len(candidates) == 0 {
		return constructor{}, fmt.Errorf("%w: %v has no constructors", ErrConstructorResolution, implementationType)
	}

	for _, candidate := range candidates {
		if len(candidate.arguments) == 0 {
			return candidate, nil
		}
	}

	resolvable := internal.Filter(candidates, func(candidate constructor) bool {
		for _, argument := range candidate.arguments {
			if !c.IsRegistered(argument) {
				return false
			}
		}
		return true
	})
	if len(resolvable) == 0 {
		return constructor{}, fmt.Errorf("%w: no constructor of %v has all of its parameters registered", ErrConstructorResolution, implementationType)
	}

	selected := resolvable[0]
	for _, candidate := range resolvable[1:] {
		if len(candidate.arguments) > len(selected.arguments) {
			selected = candidate
		}
	}
	return selected, nil
}

func (ctor constructor) call(arguments []reflect.Value) (reflect.Value, error) {
	results := ctor.function.Call(arguments)

	if ctor.returnsError {
		if err, _ := results[1].Interface().(error); err != nil {
			return reflect.Value{}, err
		}
	}

	return results[0], nil
}
