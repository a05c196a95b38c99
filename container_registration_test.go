package gameioc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the last registration", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, DeclareConstructors[*Service](c, NewServiceError))
		require.NoError(t, Register[IService, *Service](c, Singleton))
		require.NoError(t, RegisterFactory[IService](c, func(*Container) (IService, error) {
			return NewOtherService(), nil
		}, Transient))

		first, err := Resolve[IService](c)
		require.NoError(t, err)
		second, err := Resolve[IService](c)
		require.NoError(t, err)

		require.IsType(t, &OtherService{}, first)
		require.Equal(t, 13, first.GetValue())
		require.NotSame(t, first, second)
	})

	t.Run("should drop the cached singleton when overwritten", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, Register[IService, *Service](c, Singleton))

		before, err := Resolve[IService](c)
		require.NoError(t, err)

		replacement := NewService()
		require.NoError(t, RegisterInstance[IService](c, replacement))

		after, err := Resolve[IService](c)
		require.NoError(t, err)
		require.NotSame(t, before, after)
		require.Same(t, replacement, after)

		require.NoError(t, Register[IService, *Service](c, Transient))

		transient, err := Resolve[IService](c)
		require.NoError(t, err)
		require.NotSame(t, replacement, transient)
		require.NotContains(t, c.instances, reflect.TypeFor[IService]())
	})

	t.Run("should reject implementations not assignable to the service", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()

		err := Register[IService, *Config](c, Transient)
		require.ErrorIs(t, err, ErrNotAssignable)
		require.ErrorContains(t, err, "*gameioc.Config cannot be used as gameioc.IService")
		require.False(t, IsRegistered[IService](c))

		// pointer receiver methods are not in the value method set
		err = Register[IBaz, BazImpl](c, Transient)
		require.ErrorIs(t, err, ErrNotAssignable)
	})

	t.Run("should reject unknown lifetimes", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()

		err := RegisterSelf[*Service](c, Lifetime(0))
		require.ErrorIs(t, err, ErrInvalidArgument)

		err = RegisterFactory[IService](c, func(*Container) (IService, error) { return NewService(), nil }, Lifetime(42))
		require.ErrorIs(t, err, ErrInvalidArgument)

		require.False(t, IsRegistered[*Service](c))
		require.False(t, IsRegistered[IService](c))
	})

	t.Run("should reject a nil factory", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()

		err := RegisterFactory[IService](c, nil, Singleton)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.False(t, IsRegistered[IService](c))
	})

	t.Run("should reject nil instances", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()

		require.ErrorIs(t, RegisterInstance[IService](c, nil), ErrInvalidArgument)
		require.ErrorIs(t, RegisterInstance[*Config](c, nil), ErrInvalidArgument)
		require.ErrorIs(t, RegisterInstance[IService](c, (*Service)(nil)), ErrInvalidArgument)
		require.ErrorIs(t, RegisterInstance[map[string]int](c, nil), ErrInvalidArgument)

		require.False(t, IsRegistered[IService](c))
		require.False(t, IsRegistered[*Config](c))
	})

	t.Run("should accept value instances", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, RegisterInstance(c, "http://localhost"))
		require.NoError(t, RegisterInstance(c, 0))

		url, err := Resolve[string](c)
		require.NoError(t, err)
		require.Equal(t, "http://localhost", url)

		zero, err := Resolve[int](c)
		require.NoError(t, err)
		require.Equal(t, 0, zero)
	})

	t.Run("should resolve assignable implementations as the service type", func(t *testing.T) {
		t.Parallel()

		c := NewContainer()
		require.NoError(t, DeclareConstructors[PlayerNames](c, func() PlayerNames {
			return PlayerNames{"alice", "bob"}
		}))
		require.NoError(t, Register[[]string, PlayerNames](c, Singleton))

		ticks := make(chan int, 1)
		ticks <- 42
		require.NoError(t, DeclareConstructors[chan int](c, func() chan int { return ticks }))
		require.NoError(t, Register[<-chan int, chan int](c, Transient))

		names, err := Resolve[[]string](c)
		require.NoError(t, err)
		require.Equal(t, []string{"alice", "bob"}, names)

		cached, err := c.ResolveType(reflect.TypeFor[[]string]())
		require.NoError(t, err)
		require.IsType(t, []string{}, cached)

		received, err := Resolve[<-chan int](c)
		require.NoError(t, err)
		require.Equal(t, 42, <-received)
	})

	t.Run("should report lifetime names", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "Transient", Transient.String())
		require.Equal(t, "Singleton", Singleton.String())
		require.Equal(t, "Unknown", Lifetime(0).String())
	})
}
