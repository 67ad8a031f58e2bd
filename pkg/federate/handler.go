package federate

// Handler is the call signature shared by every entry of a registry.
//
// Handlers with several arguments take a struct (or any other composite
// value) as A. See Unit for the zero-argument and no-result cases.
type Handler[A, R any] func(A) R

// Unit is the empty value used as A for handlers that take no argument
// and as R for handlers that produce no result.
type Unit = struct{}

// Action adapts a side-effect-only function into a Handler returning Unit.
//
// Example:
//
//	f := federate.New[string, federate.Unit]()
//	f.Register(federate.Action(func(msg string) { log.Println(msg) }))
//	f.Notify(ctx, "hello")
func Action[A any](fn func(A)) Handler[A, Unit] {
	if fn == nil {
		return nil
	}
	return func(a A) Unit {
		fn(a)
		return Unit{}
	}
}

// Thunk adapts a zero-argument function into a Handler taking Unit.
func Thunk[R any](fn func() R) Handler[Unit, R] {
	if fn == nil {
		return nil
	}
	return func(Unit) R {
		return fn()
	}
}

// Proc adapts a function with neither arguments nor results.
func Proc(fn func()) Handler[Unit, Unit] {
	if fn == nil {
		return nil
	}
	return func(Unit) Unit {
		fn()
		return Unit{}
	}
}
