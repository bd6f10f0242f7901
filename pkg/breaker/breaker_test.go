package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	cb := breaker.New(10, 50*time.Millisecond, 0.3, 2)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// trip it open
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(fail), errService)
	}
	require.ErrorIs(t, cb.Call(ok), breaker.ErrOpenCB)

	// after the timeout it half-opens and recovers on consecutive successes
	time.Sleep(60 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.NoError(t, cb.Call(ok))

	// a failure in half-open slams it shut again
	for i := 0; i < 4; i++ {
		_ = cb.Call(fail)
	}
	time.Sleep(60 * time.Millisecond)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.ErrorIs(t, cb.Call(ok), breaker.ErrOpenCB)
}
