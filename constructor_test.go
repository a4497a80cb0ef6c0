package injekt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructor_MultipleResults(t *testing.T) {
	calls := 0
	creator := func() (*personService, *sideService) {
		calls++
		return newPersonService(), newSideService()
	}

	j := New(creator)

	side := MustResolve[*sideService](j)
	assert.Equal(t, 7, side.val)

	person := MustResolve[*personService](j)
	assert.Equal(t, "John Doe", person.name)

	// One invocation filled both slots.
	assert.Equal(t, 1, calls)
}

func TestConstructor_DuplicateResultTypeKeepsCanonicalInstance(t *testing.T) {
	j := New(func() (*personService, *personService) {
		return &personService{name: "first"}, &personService{name: "second"}
	})

	// The registry holds the first occurrence; every request hands out
	// that same instance, including the one that ran the constructor.
	first := MustResolve[*personService](j)
	second := MustResolve[*personService](j)

	assert.Same(t, first, second)
	assert.Equal(t, "first", first.name)
}

func TestConstructor_MultipleResultsWithError(t *testing.T) {
	j := New(func() (*personService, *sideService, error) {
		return newPersonService(), newSideService(), nil
	})

	assert.Equal(t, "John Doe", MustResolve[*personService](j).name)
	assert.Equal(t, 7, MustResolve[*sideService](j).val)
}

func TestConstructor_ContextParameter(t *testing.T) {
	type key struct{}
	var seen any
	j := New(func(ctx context.Context) *personService {
		seen = ctx.Value(key{})
		return newPersonService()
	})

	ctx := context.WithValue(context.Background(), key{}, "hello")
	_, err := ResolveContext[*personService](ctx, j)

	assert.NoError(t, err)
	assert.Equal(t, "hello", seen)
}

func TestConstructor_InvalidSignatures(t *testing.T) {
	// No result values at all.
	assert.Panics(t, func() {
		New(func() {})
	})

	// Only an error result.
	assert.Panics(t, func() {
		New(func() error { return nil })
	})

	// Multiple error results.
	assert.Panics(t, func() {
		New(func() (*personService, error, error) { return nil, nil, nil })
	})
}

func TestConstructor_SuppliedArgsFillInDeclarationOrder(t *testing.T) {
	type pairService struct {
		a *personService
		b *personService
	}
	j := New(func(a, b *personService) *pairService {
		return &pairService{a: a, b: b}
	})

	first := &personService{name: "first"}
	second := &personService{name: "second"}
	pair := MustResolve[*pairService](j, first, second)

	assert.Same(t, first, pair.a)
	assert.Same(t, second, pair.b)
}

func TestConstructor_SuppliedNilPanics(t *testing.T) {
	j := New(newGroupService)
	assert.Panics(t, func() {
		_, _ = Resolve[*groupService](j, nil)
	})
}

func TestConstructor_UnusedSuppliedArgIgnored(t *testing.T) {
	j := New(newPersonService, newGroupService)

	// A supplied value no parameter can accept is simply not consumed.
	group := MustResolve[*groupService](j, &sideService{val: 1})

	assert.Equal(t, "John Doe", group.person.name)
}
