package gameioc

import (
	"fmt"
	"reflect"

	"github.com/victormf2/gameioc/internal"
)

// ImplementationKind tells how a service type is built.
type ImplementationKind int

const (
	// NotRegistered means the service type has no registration.
	NotRegistered ImplementationKind = iota
	// NoStaticType means the service type is built by a factory, so the implementation
	// type is only known after resolution.
	NoStaticType
	// StaticType means the implementation type is known from the registration.
	StaticType
)

func (k ImplementationKind) String() string {
	switch k {
	case NotRegistered:
		return "NotRegistered"
	case NoStaticType:
		return "NoStaticType"
	case StaticType:
		return "StaticType"
	default:
		return "Unknown"
	}
}

// Implementation describes the implementation of a service type.
// Type is only set when Kind is StaticType.
type Implementation struct {
	Kind ImplementationKind
	Type reflect.Type
}

func (i Implementation) String() string {
	if i.Kind == StaticType {
		return fmt.Sprintf("%v", i.Type)
	}
	return i.Kind.String()
}

// IsRegistered reports whether serviceType has a registration.
func (c *Container) IsRegistered(serviceType reflect.Type) bool {
	_, found := c.registry[serviceType]
	return found
}

// IsRegistered reports whether T has a registration.
func IsRegistered[T any](c *Container) bool {
	return c.IsRegistered(reflect.TypeFor[T]())
}

// RegisteredTypes returns every registered service type in no particular order.
// It includes *Container, which every Container registers for itself.
func (c *Container) RegisteredTypes() []reflect.Type {
	return internal.Keys(c.registry)
}

// ImplementationType returns how serviceType is built. Factory registrations and
// unregistered types are told apart by Kind.
func (c *Container) ImplementationType(serviceType reflect.Type) Implementation {
	descriptor, found := c.registry[serviceType]
	if !found {
		return Implementation{Kind: NotRegistered}
	}
	if descriptor.factory != nil {
		return Implementation{Kind: NoStaticType}
	}
	return Implementation{Kind: StaticType, Type: descriptor.implementationType}
}

// ImplementationTypeOf is the type parameter counterpart of (*Container).ImplementationType.
func ImplementationTypeOf[T any](c *Container) Implementation {
	return c.ImplementationType(reflect.TypeFor[T]())
}
