package injekt

import (
	"fmt"
	"reflect"
)

// ImplementIn declares concrete type C as an implementer of interface I on
// the given injector. The resolver consults the implementer set when an
// interface is required and no live instance or bound constructor can
// satisfy it: the first implementer registered wins, and it is built through
// the same singleton machinery as any other type.
//
// Go cannot enumerate the implementations of an interface at runtime, so
// this explicit declaration is how an abstract dependency learns its
// concrete candidates. Declaring the same pair twice is a no-op.
// ImplementIn panics if I is not an interface or C does not implement it.
func ImplementIn[I any, C any](j *Injector) {
	ifaceType := reflect.TypeOf((*I)(nil)).Elem()
	concreteType := reflect.TypeOf((*C)(nil)).Elem()
	j.addImplementer(ifaceType, concreteType)
}

func (j *Injector) addImplementer(ifaceType, concreteType reflect.Type) {
	if ifaceType.Kind() != reflect.Interface {
		panic(fmt.Sprintf("injekt: implement target %v is not an interface", ifaceType))
	}
	if getTypeInfo(concreteType).isInterface {
		panic(fmt.Sprintf("injekt: implementer %v of %v must be a concrete type", concreteType, ifaceType))
	}
	if !canAssign(concreteType, ifaceType) {
		panic(fmt.Sprintf("injekt: %v does not implement %v", concreteType, ifaceType))
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	for _, existing := range j.implementers[ifaceType] {
		if existing == concreteType {
			return
		}
	}
	j.implementers[ifaceType] = append(j.implementers[ifaceType], concreteType)
}
