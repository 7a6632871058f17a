package eventual

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casualjim/eventual/pkg/stdx"
)

func TestNewPoolExecutorValidation(t *testing.T) {
	t.Run("zero workers", func(t *testing.T) {
		_, err := NewPoolExecutor[int, error](0, 1)
		assert.Error(t, err)
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := NewPoolExecutor[int, error](1, -1)
		assert.Error(t, err)
	})
}

func TestPoolExecutorRunsActions(t *testing.T) {
	pool := stdx.Must1(NewPoolExecutor[int, error](2, 8))
	defer pool.Close()

	const jobs = 10
	var mu sync.Mutex
	var got []int

	var wg sync.WaitGroup
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		i := i
		pool.Execute(func(resolve Resolver[int], _ Rejecter[error]) error {
			resolve(i)
			return nil
		}, func(v int) {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
			wg.Done()
		}, func(error) { t.Error("unexpected rejection") })
	}
	wg.Wait()

	assert.Len(t, got, jobs)
	assert.Eventually(t, func() bool { return pool.InFlight() == 0 },
		2*time.Second, 10*time.Millisecond, "in-flight count should drain")
}

func TestPoolExecutorConvertibleRejection(t *testing.T) {
	pool := stdx.Must1(NewPoolExecutor[int, *testFailure](1, 1))
	defer pool.Close()

	rejected := make(chan *testFailure, 1)
	failure := &testFailure{msg: "pooled failure"}
	pool.Execute(func(Resolver[int], Rejecter[*testFailure]) *testFailure {
		return failure
	}, func(int) { t.Error("unexpected resolve") }, func(err *testFailure) { rejected <- err })

	select {
	case err := <-rejected:
		assert.Same(t, failure, err)
	case <-time.After(2 * time.Second):
		t.Fatal("rejection never delivered")
	}
}

func TestPoolExecutorNonConvertibleFault(t *testing.T) {
	faults := make(chan *Fault, 1)
	pool := stdx.Must1(NewPoolExecutor[int, *testFailure](1, 1,
		WithFaultMode(NonConvertible),
		WithFaultHandler(func(f *Fault) { faults <- f }),
	))
	defer pool.Close()

	failure := &testFailure{msg: "pooled fault"}
	pool.Execute(func(Resolver[int], Rejecter[*testFailure]) *testFailure {
		return failure
	}, func(int) {}, func(*testFailure) { t.Error("fault must never reach a rejected-listener") })

	select {
	case fault := <-faults:
		assert.Same(t, failure, fault.Unwrap())
	case <-time.After(2 * time.Second):
		t.Fatal("fault handler never invoked")
	}
}

func TestPoolExecutorAppliesBackpressure(t *testing.T) {
	pool := stdx.Must1(NewPoolExecutor[int, error](1, 0))
	defer pool.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	pool.Execute(func(resolve Resolver[int], _ Rejecter[error]) error {
		close(started)
		<-release
		resolve(0)
		return nil
	}, func(int) {}, func(error) {})
	<-started

	// Worker is busy and the queue has no depth: the next submit must
	// block until the release.
	submitted := make(chan struct{})
	go func() {
		pool.Execute(func(resolve Resolver[int], _ Rejecter[error]) error {
			resolve(1)
			return nil
		}, func(int) {}, func(error) {})
		close(submitted)
	}()

	select {
	case <-submitted:
		t.Fatal("submit should have blocked on a full pool")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-submitted:
	case <-time.After(2 * time.Second):
		t.Fatal("submit never unblocked")
	}
}

func TestPoolExecutorWithDeferred(t *testing.T) {
	pool := stdx.Must1(NewPoolExecutor[string, error](1, 1))
	defer pool.Close()

	resolved := make(chan string, 1)
	gate := make(chan struct{})

	d := NewWithExecutor(func(resolve Resolver[string], _ Rejecter[error]) error {
		<-gate
		resolve("from the pool")
		return nil
	}, pool)
	require.NotNil(t, d)

	d.OnResolved(func(v string) { resolved <- v })
	close(gate)

	select {
	case v := <-resolved:
		assert.Equal(t, "from the pool", v)
	case <-time.After(2 * time.Second):
		t.Fatal("deferred never resolved")
	}
}

func TestPoolExecutorCloseIsIdempotent(t *testing.T) {
	pool := stdx.Must1(NewPoolExecutor[int, error](1, 1))
	assert.NotPanics(t, func() {
		pool.Close()
		pool.Close()
	})
}
