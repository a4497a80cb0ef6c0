package injekt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_UninitializedConstructor(t *testing.T) {
	j := New(newPersonService)

	status := j.Status()
	assert.Equal(t, "*injekt.personService - uninitialized - constructor: () *injekt.personService", status)
}

func TestStatus_CreatedInstance(t *testing.T) {
	j := New(newPersonService)
	MustResolve[*personService](j)

	status := j.Status()
	assert.Equal(t, "*injekt.personService - created from constructor: () *injekt.personService", status)
}

func TestStatus_DirectValueAndImplementers(t *testing.T) {
	j := New(&sideService{val: 1})
	ImplementIn[database, *bqDatabase](j)

	status := j.Status()
	assert.Contains(t, status, "*injekt.sideService - instance set")
	assert.Contains(t, status, "injekt.database - abstract - implemented by: *injekt.bqDatabase")
}

func TestStatus_ConstructorAndImplementersOnSameInterface(t *testing.T) {
	j := New(func() database { return &memoryDatabase{} })
	ImplementIn[database, *bqDatabase](j)

	status := j.Status()
	assert.Equal(t, "injekt.database - uninitialized - constructor: () injekt.database - implemented by: *injekt.bqDatabase", status)
}

func TestStatus_EmbeddedInResolutionError(t *testing.T) {
	j := New(newUserService)

	_, err := Resolve[*userService](j)

	resErr, ok := err.(*ResolutionError)
	assert.True(t, ok)
	assert.Contains(t, resErr.Status, "*injekt.userService - uninitialized - constructor:")
}
