package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = func() (err error) {
				defer func() {
					err = HandlePanicRecover(recover())
				}()
				var l *Line
				l.Direction()
				return nil
			}()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("from a constructor", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandlePanicRecover(recover())
			}()
			NewLine(Vector{1, 1}, Vector{})
			return nil
		}()
		assert.EqualError(t, err, "line direction must not be the zero vector")
	})
}
