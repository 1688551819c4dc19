// Command test-focus polls the foreground window and prints every focus
// change. Useful for checking what the focus tracker sees on a given
// desktop before trusting the paste policy with it.
//
// Usage:
//
//	go run ./cmd/test-focus
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soliblue/dictate/internal/focus"
)

func main() {
	fmt.Println("Click around different windows/tabs. Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	tracker := focus.NewSystemTracker()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var last focus.Snapshot
	for {
		select {
		case <-ticker.C:
			snap := tracker.Capture()
			if snap == last {
				continue
			}
			change := focus.Compare(last, snap)
			fmt.Printf("[%s] pid=%d window=%d title=%q (%s)\n",
				time.Now().Format("15:04:05"), snap.PID, snap.Window, snap.Title, change)
			last = snap
		case <-sig:
			fmt.Println("\nDone.")
			return
		}
	}
}
