// Package injekt is a small dependency-injection engine built around a
// process-wide singleton registry. A type is made injectable by registering a
// constructor function for it; when an instance is requested, injekt resolves
// each of the constructor's parameters by declared type, reusing instances
// that already exist and building the ones that don't. Every injectable type
// has at most one live instance per Injector.
//
// The Injector object has comprehensive documentation about how resolution
// works. A process-wide default Injector backs the package-level functions,
// which is the usual way to use this package:
//
//	injekt.Register(NewPersonService, NewGroupService)
//
//	group := injekt.MustConstruct[*GroupService]()
//
// Interface dependencies are resolved through explicitly declared
// implementers:
//
//	injekt.Implement[Database, *BQDatabase]()
//
//	svc := injekt.MustConstruct[*UserService]() // receives a *BQDatabase
//
// Reset clears the instance registry between test cases so every test starts
// from a clean slate while keeping all registered constructors in place.
package injekt
