package gameioc

// Lifetime decides whether a resolution reuses a cached instance or builds a new one.
type Lifetime int

const (
	// Transient services are built again on every Resolve call.
	Transient Lifetime = iota + 1
	// Singleton services are built once and cached for the lifetime of the Container.
	Singleton
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Singleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}

func (l Lifetime) valid() bool {
	return l == Transient || l == Singleton
}
