package gameioc

import (
	"errors"

	"github.com/google/uuid"
)

type IService interface {
	GetValue() int
}
type Service struct {
	value string
}

func (s *Service) GetValue() int {
	return 12
}

func NewService() *Service {
	return &Service{
		value: uuid.NewString(),
	}
}

func NewServiceUnsafe() (*Service, error) {
	return &Service{value: uuid.NewString()}, nil
}

type CustomError struct{}

func (c CustomError) Error() string {
	return "custom error"
}

var customError = &CustomError{}

func NewServiceError() (*Service, error) {
	return nil, customError
}

type OtherService struct {
	value string
}

func (s *OtherService) GetValue() int {
	return 13
}

func NewOtherService() IService {
	return &OtherService{
		value: uuid.NewString(),
	}
}

type Logger struct {
	id string
}

func NewLogger() *Logger {
	return &Logger{id: uuid.NewString()}
}

type ServiceA struct {
	id     string
	logger *Logger
}

func NewServiceA(logger *Logger) *ServiceA {
	return &ServiceA{
		id:     uuid.NewString(),
		logger: logger,
	}
}

type IFoo interface {
	Foo() string
}

type IBar interface {
	Bar() string
}

type IBaz interface {
	Baz() string
}

type FooImpl struct {
	bar             IBar
	baz             IBaz
	usedConstructor string
}

func (f *FooImpl) Foo() string {
	return f.usedConstructor
}

func NewFooImpl() *FooImpl {
	return &FooImpl{usedConstructor: "()"}
}

func NewFooImplWithBar(bar IBar) *FooImpl {
	return &FooImpl{bar: bar, usedConstructor: "(bar)"}
}

func NewFooImplWithBaz(baz IBaz) *FooImpl {
	return &FooImpl{baz: baz, usedConstructor: "(baz)"}
}

func NewFooImplWithBarAndBaz(bar IBar, baz IBaz) *FooImpl {
	return &FooImpl{bar: bar, baz: baz, usedConstructor: "(bar, baz)"}
}

type BarImpl struct {
	name string
}

func (b BarImpl) Bar() string {
	return "bar" + b.name
}

type BazImpl struct {
	name string
}

func (b *BazImpl) Baz() string {
	return "baz" + b.name
}

type Config struct {
	SomeUrl string
}

func NewConfig(url string) *Config {
	return &Config{
		SomeUrl: url,
	}
}

type Chicken struct {
	egg *Egg
}

func NewChicken(egg *Egg) *Chicken {
	return &Chicken{egg: egg}
}

type Egg struct {
	chicken *Chicken
}

func NewEgg(chicken *Chicken) *Egg {
	return &Egg{chicken: chicken}
}

type Ouroboros struct {
	tail *Ouroboros
}

func NewOuroboros(tail *Ouroboros) *Ouroboros {
	return &Ouroboros{tail: tail}
}

var errBroken = errors.New("broken")

func NewBrokenBaz() (*BazImpl, error) {
	return nil, errBroken
}

type PlayerNames []string
