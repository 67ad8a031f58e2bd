package federate_test

import (
	"context"
	"fmt"

	"github.com/randalmurphal/federate/pkg/federate"
)

func Example() {
	f := federate.New[int, int]()
	f.Register(func(x int) int { return x * 2 })
	f.Register(func(x int) int { return 1 << x })
	f.Register(func(x int) int { return x * x })

	fmt.Println(f.Invoke(context.Background(), 8))
	fmt.Println(f.Size(), f.GarbageSize())
	// Output:
	// [16 256 64]
	// 3 0
}

func Example_invokeAsync() {
	f := federate.New[string, int](federate.WithThreadSafe())
	f.Register(func(s string) int { return len(s) })
	f.Register(func(s string) int { return len(s) * 10 })

	results, err := federate.WaitAll(f.InvokeAsync(context.Background(), "hello"))
	fmt.Println(results, err)
	// Output:
	// [5 50] <nil>
}

func ExampleAction() {
	f := federate.New[string, federate.Unit]()
	f.Register(federate.Action(func(name string) { fmt.Println("hello,", name) }))
	f.Register(federate.Action(func(name string) { fmt.Println("goodbye,", name) }))

	f.Notify(context.Background(), "gopher")
	// Output:
	// hello, gopher
	// goodbye, gopher
}
