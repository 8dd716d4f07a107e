package rod

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProcesses numbers each started process and records which were stopped.
type fakeProcesses struct {
	started int
	stopped []int
	fail    bool
}

func (f *fakeProcesses) start() (int, func() error, error) {
	if f.fail {
		return 0, nil, errors.New("no chrome")
	}
	f.started++
	id := f.started
	return id, func() error {
		f.stopped = append(f.stopped, id)
		return nil
	}, nil
}

func TestRecycler(t *testing.T) {
	t.Parallel()

	t.Run("keeps a retired process alive until its pages are released", func(t *testing.T) {
		t.Parallel()

		procs := &fakeProcesses{}
		r, err := newRecycler(procs.start, 2)
		require.NoError(t, err)

		first, releaseA, err := r.acquire()
		require.NoError(t, err)
		_, releaseB, err := r.acquire()
		require.NoError(t, err)

		// The threshold is reached while both pages are still open.
		second, releaseC, err := r.acquire()
		require.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
		assert.Empty(t, procs.stopped)

		releaseA()
		assert.Empty(t, procs.stopped)

		releaseB()
		assert.Equal(t, []int{1}, procs.stopped)

		releaseC()
		assert.Equal(t, []int{1}, procs.stopped)
	})

	t.Run("stops an idle process as soon as it is replaced", func(t *testing.T) {
		t.Parallel()

		procs := &fakeProcesses{}
		r, err := newRecycler(procs.start, 1)
		require.NoError(t, err)

		_, release, err := r.acquire()
		require.NoError(t, err)
		release()

		got, release, err := r.acquire()
		require.NoError(t, err)
		defer release()

		assert.Equal(t, 2, got)
		assert.Equal(t, []int{1}, procs.stopped)
	})

	t.Run("releasing twice counts once", func(t *testing.T) {
		t.Parallel()

		procs := &fakeProcesses{}
		r, err := newRecycler(procs.start, 2)
		require.NoError(t, err)

		_, releaseA, err := r.acquire()
		require.NoError(t, err)
		_, releaseB, err := r.acquire()
		require.NoError(t, err)
		_, releaseC, err := r.acquire()
		require.NoError(t, err)

		// Process 1 still has page A open after B is released twice.
		releaseB()
		releaseB()
		assert.Empty(t, procs.stopped)

		releaseA()
		releaseC()
		assert.Equal(t, []int{1}, procs.stopped)
	})

	t.Run("keeps the current process when a replacement fails to start", func(t *testing.T) {
		t.Parallel()

		procs := &fakeProcesses{}
		r, err := newRecycler(procs.start, 1)
		require.NoError(t, err)

		_, release, err := r.acquire()
		require.NoError(t, err)
		release()

		procs.fail = true
		got, release, err := r.acquire()
		require.NoError(t, err)
		release()

		assert.Equal(t, 1, got)
		assert.Empty(t, procs.stopped)
	})

	t.Run("never recycles when max pages is zero", func(t *testing.T) {
		t.Parallel()

		procs := &fakeProcesses{}
		r, err := newRecycler(procs.start, 0)
		require.NoError(t, err)

		for range 10 {
			_, release, err := r.acquire()
			require.NoError(t, err)
			release()
		}

		assert.Equal(t, 1, procs.started)
	})

	t.Run("close stops draining and current processes", func(t *testing.T) {
		t.Parallel()

		procs := &fakeProcesses{}
		r, err := newRecycler(procs.start, 1)
		require.NoError(t, err)

		_, releaseA, err := r.acquire()
		require.NoError(t, err)
		_, releaseB, err := r.acquire()
		require.NoError(t, err)

		require.NoError(t, r.close())
		assert.ElementsMatch(t, []int{1, 2}, procs.stopped)

		releaseA()
		releaseB()
		assert.Len(t, procs.stopped, 2)

		_, _, err = r.acquire()
		assert.ErrorIs(t, err, errBrowserClosed)
	})

	t.Run("returns the start error", func(t *testing.T) {
		t.Parallel()

		_, err := newRecycler((&fakeProcesses{fail: true}).start, 1)

		assert.Error(t, err)
	})
}
