// Command test-inject is a manual test for text delivery.
// It waits 3 seconds, then pastes or types test text.
// Focus a text editor before the countdown finishes.
//
// Usage:
//
//	go run ./cmd/test-inject [--method paste|type] [--enter]
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/soliblue/dictate/internal/inject"
)

func main() {
	method := flag.String("method", "paste", "deliver method: paste or type")
	enter := flag.Bool("enter", false, "tap Enter after delivering")
	flag.Parse()

	text := "Hello from dictate!"

	fmt.Printf("Will deliver %q using %q method in 3 seconds...\n", text, *method)
	fmt.Println("Focus a text editor now!")

	for i := 3; i > 0; i-- {
		fmt.Printf("%d...\n", i)
		time.Sleep(time.Second)
	}

	inj := inject.NewInjector(*method, *enter)
	if err := inj.Deliver(text); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("\nDone!")
}
