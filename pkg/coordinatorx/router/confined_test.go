package router_test

import (
	"context"
	"sync"
	"testing"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/internal"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/router"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/routertest"
	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext is a mainctx.Context whose queue is drained by hand.
type fakeContext struct {
	current bool
	err     error
	queue   []func()
}

func (f *fakeContext) Post(task func()) error {
	if f.err != nil {
		return f.err
	}
	f.queue = append(f.queue, task)
	return nil
}

func (f *fakeContext) IsCurrent() bool {
	return f.current
}

func (f *fakeContext) drain() {
	for len(f.queue) > 0 {
		task := f.queue[0]
		f.queue = f.queue[1:]
		task()
	}
}

func TestConfinedRunsInlineOnContext(t *testing.T) {
	ctx := &fakeContext{current: true}
	rec := routertest.NewRecorder[int]()
	r := router.Confine[int](ctx, rec)

	r.Trigger(5)
	r.Trigger(7)

	assert.Empty(t, ctx.queue)
	assert.Equal(t, []int{5, 7}, rec.Routes())
}

func TestConfinedQueuesFromOtherContexts(t *testing.T) {
	ctx := &fakeContext{}
	rec := routertest.NewRecorder[int]()
	r := router.Confine[int](ctx, rec)

	r.Trigger(5)
	r.Trigger(7)

	assert.Equal(t, 0, rec.Len())
	assert.Len(t, ctx.queue, 2)

	ctx.drain()
	assert.Equal(t, []int{5, 7}, rec.Routes())
}

func TestConfinedDropsRefusedTriggers(t *testing.T) {
	ctx := &fakeContext{err: mainctx.ErrLoopClosed}
	rec := routertest.NewRecorder[int]()
	r := router.Confine[int](ctx, rec)

	assert.NotPanics(t, func() { r.Trigger(1) })
	assert.ErrorIs(t, r.TryTrigger(2), mainctx.ErrLoopClosed)
	assert.Equal(t, 0, rec.Len())
}

func TestConfinedAccessors(t *testing.T) {
	ctx := &fakeContext{}
	rec := routertest.NewRecorder[string]()
	r := router.Confine[string](ctx, rec)

	assert.Same(t, ctx, r.Context())
	assert.Same(t, rec, r.Unwrap())
}

func TestConfinedOnLoopRecordsInOrder(t *testing.T) {
	if _, ok := internal.ThreadID(); !ok {
		t.Skip("OS thread ids unavailable on this platform")
	}
	defer leaktest.Check(t)()

	loop := mainctx.NewLoop(mainctx.LoopOptions{})
	require.NoError(t, loop.Start(context.Background()))
	defer loop.Shutdown(context.Background())

	rec := routertest.NewRecorder[int]()
	r := router.Confine[int](loop, rec)

	var onLoop []bool
	rec.OnTrigger(func(int) { onLoop = append(onLoop, loop.IsCurrent()) })

	require.NoError(t, mainctx.Do(context.Background(), loop, func() {
		r.Trigger(5)
		// inline on the designated context
		assert.Equal(t, []int{5}, rec.Routes())
		r.Trigger(7)
	}))

	assert.Equal(t, []int{5, 7}, rec.Routes())
	assert.Equal(t, []bool{true, true}, onLoop)
}

func TestConfinedFromManyGoroutines(t *testing.T) {
	defer leaktest.Check(t)()

	loop := mainctx.NewLoop(mainctx.LoopOptions{})
	require.NoError(t, loop.Start(context.Background()))

	// Only touched on the loop, so no lock is needed.
	var perSender [4][]int
	r := router.Confine[[2]int](loop, router.Func[[2]int](func(route [2]int) {
		perSender[route[0]] = append(perSender[route[0]], route[1])
	}))

	var wg sync.WaitGroup
	for sender := 0; sender < 4; sender++ {
		sender := sender
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				r.Trigger([2]int{sender, i})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, loop.Shutdown(context.Background()))

	for sender := range perSender {
		require.Len(t, perSender[sender], 50)
		for i, v := range perSender[sender] {
			assert.Equal(t, i, v, "sender %d out of order", sender)
		}
	}
}
