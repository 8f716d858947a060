// Package shutdown coordinates graceful teardown of the HTTP listener and
// the headless browser session behind the report exporter.
package shutdown

import (
	"container/heap"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/flanksource/commons/logger"
)

// Hooks run lowest priority first: stop accepting requests before closing
// the backends those requests use.
const (
	PriorityIngress = 0
	PriorityDefault = 100
	PriorityBrowser = 200
)

type hook struct {
	label    string
	priority int
	fn       func()
	index    int
}

type hookHeap []*hook

func (h hookHeap) Len() int           { return len(h) }
func (h hookHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h hookHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *hookHeap) Push(x interface{}) {
	item := x.(*hook)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *hookHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

var (
	hooks    hookHeap
	hooksMux sync.Mutex
	once     sync.Once
)

// AddHook registers a teardown step with default priority.
func AddHook(label string, fn func()) {
	AddHookWithPriority(label, PriorityDefault, fn)
}

// AddHookWithPriority registers a teardown step.
func AddHookWithPriority(label string, priority int, fn func()) {
	hooksMux.Lock()
	defer hooksMux.Unlock()
	heap.Push(&hooks, &hook{label: label, priority: priority, fn: fn})
}

// Shutdown runs every registered hook in priority order. A panicking hook is
// logged and does not stop the remaining hooks.
func Shutdown() {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	if len(hooks) == 0 {
		return
	}

	logger.Infof("running %d shutdown hooks", len(hooks))
	for hooks.Len() > 0 {
		h := heap.Pop(&hooks).(*hook)
		logger.Debugf("shutdown hook %s (priority=%d)", h.label, h.priority)
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("panic in shutdown hook %s: %v", h.label, r)
				}
			}()
			h.fn()
		}()
	}
}

// WaitForSignal blocks until SIGINT or SIGTERM, runs the hooks, and exits.
// A second signal forces immediate exit.
func WaitForSignal() {
	once.Do(func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		sig := <-sigChan
		logger.Infof("received %s, shutting down", sig)

		go func() {
			<-sigChan
			logger.Errorf("forced exit")
			os.Exit(1)
		}()

		Shutdown()
		os.Exit(0)
	})
}

// RunAndWait starts fn and then waits for a shutdown signal.
func RunAndWait(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	WaitForSignal()
	return nil
}
