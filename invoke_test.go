package injekt

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoke_ResolvesParameters(t *testing.T) {
	j := New(newPersonService, newSideService)

	var gotPerson *personService
	var gotSide *sideService
	err := j.Invoke(context.Background(), func(p *personService, s *sideService) {
		gotPerson = p
		gotSide = s
	})

	assert.NoError(t, err)
	assert.Same(t, MustResolve[*personService](j), gotPerson)
	assert.Same(t, MustResolve[*sideService](j), gotSide)
}

func TestInvoke_ErrorReturnedUnchanged(t *testing.T) {
	boom := fmt.Errorf("invoked and failed")
	j := New(newPersonService)

	err := j.Invoke(context.Background(), func(p *personService) error {
		return boom
	})

	assert.Equal(t, boom, err)
}

func TestInvoke_ResolutionFailureReported(t *testing.T) {
	j := New()

	err := j.Invoke(context.Background(), func(db database) {})

	var resErr *ResolutionError
	assert.ErrorAs(t, err, &resErr)
}

func TestInvoke_SuppliedArgs(t *testing.T) {
	j := New(newPersonService)

	custom := &personService{name: "supplied"}
	var got *personService
	err := j.Invoke(context.Background(), func(p *personService) {
		got = p
	}, custom)

	assert.NoError(t, err)
	assert.Same(t, custom, got)
}

func TestInvoke_ContextParameter(t *testing.T) {
	type key struct{}
	j := New()

	ctx := context.WithValue(context.Background(), key{}, 42)
	var got any
	err := j.Invoke(ctx, func(ctx context.Context) {
		got = ctx.Value(key{})
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestInvoke_NonFunctionPanics(t *testing.T) {
	j := New()
	assert.Panics(t, func() {
		_ = j.Invoke(context.Background(), "not a function")
	})
}
