package gameioc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainerResolution(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the container itself", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, DeclareConstructors[ServiceWithContainer](c, NewServiceWithContainer))
		require.NoError(t, RegisterSelf[ServiceWithContainer](c, Singleton))

		service, err := Resolve[ServiceWithContainer](c)
		require.NoError(t, err)

		container, err := Resolve[*Container](c)
		require.NoError(t, err)

		require.Same(t, c, service.container)
		require.Same(t, c, container)
	})

	t.Run("should fail for unregistered services without side effects", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, RegisterSelf[*Logger](c, Singleton))

		registeredBefore := len(c.registry)
		cachedBefore := len(c.instances)

		service, err := Resolve[IService](c)
		require.ErrorIs(t, err, ErrServiceNotRegistered)
		require.ErrorContains(t, err, "gameioc.IService")
		require.Nil(t, service)

		_, err = c.ResolveType(reflect.TypeFor[*Config]())
		require.ErrorIs(t, err, ErrServiceNotRegistered)

		require.Len(t, c.registry, registeredBefore)
		require.Len(t, c.instances, cachedBefore)
		require.Empty(t, c.resolving)
	})

	t.Run("should report unregistered nested dependencies", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, RegisterFactory[*ServiceA](c, func(c *Container) (*ServiceA, error) {
			logger, err := Resolve[*Logger](c)
			if err != nil {
				return nil, err
			}
			return NewServiceA(logger), nil
		}, Transient))

		_, err := Resolve[*ServiceA](c)
		require.ErrorIs(t, err, ErrServiceNotRegistered)
		require.ErrorContains(t, err, "*gameioc.Logger")
	})

	t.Run("should resolve by reflect.Type", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, Register[IService, *Service](c, Singleton))

		instance, err := c.ResolveType(reflect.TypeFor[IService]())
		require.NoError(t, err)

		service, err := Resolve[IService](c)
		require.NoError(t, err)
		require.Same(t, service, instance)
	})

	t.Run("should resolve a nil factory result as the zero value", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, RegisterFactory[IBar](c, func(*Container) (IBar, error) {
			return nil, nil
		}, Singleton))
		require.NoError(t, DeclareConstructors[*FooImpl](c, NewFooImplWithBar))
		require.NoError(t, Register[IFoo, *FooImpl](c, Transient))

		bar, err := Resolve[IBar](c)
		require.NoError(t, err)
		require.Nil(t, bar)

		foo, err := Resolve[IFoo](c)
		require.NoError(t, err)
		require.Equal(t, "(bar)", foo.Foo())
		require.Nil(t, foo.(*FooImpl).bar)
	})
}

func TestFactory(t *testing.T) {
	t.Parallel()

	t.Run("should never use constructors for factory registrations", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()

		constructorCalls := 0
		require.NoError(t, DeclareConstructors[*Service](c, func() *Service {
			constructorCalls++
			return NewService()
		}))

		factoryCalls := 0
		require.NoError(t, RegisterFactory[*Service](c, func(*Container) (*Service, error) {
			factoryCalls++
			return &Service{value: "from factory"}, nil
		}, Transient))

		service, err := Resolve[*Service](c)
		require.NoError(t, err)
		require.Equal(t, "from factory", service.value)
		require.Equal(t, 1, factoryCalls)
		require.Equal(t, 0, constructorCalls)
	})

	t.Run("should pass the container to the factory", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, RegisterSelf[*Logger](c, Singleton))
		require.NoError(t, RegisterFactory[*ServiceA](c, func(fc *Container) (*ServiceA, error) {
			require.Same(t, c, fc)
			logger, err := Resolve[*Logger](fc)
			if err != nil {
				return nil, err
			}
			return NewServiceA(logger), nil
		}, Singleton))

		service, err := Resolve[*ServiceA](c)
		require.NoError(t, err)

		logger, err := Resolve[*Logger](c)
		require.NoError(t, err)
		require.Same(t, logger, service.logger)
	})

	t.Run("should propagate factory errors", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, RegisterFactory[IService](c, func(*Container) (IService, error) {
			return nil, customError
		}, Singleton))

		_, err := Resolve[IService](c)
		require.ErrorIs(t, err, customError)
		require.ErrorContains(t, err, "failed to resolve a value for type gameioc.IService")
	})
}

type ServiceWithContainer struct {
	container *Container
}

func NewServiceWithContainer(c *Container) ServiceWithContainer {
	return ServiceWithContainer{
		container: c,
	}
}
