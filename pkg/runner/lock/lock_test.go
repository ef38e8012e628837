package lock

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

func answers(values ...string) ReadSecret {
	return func(string) (string, error) {
		if len(values) == 0 {
			return "", errors.New("no more input")
		}
		v := values[0]
		values = values[1:]
		return v, nil
	}
}

func TestLock(t *testing.T) {
	kv := store.NewMemory()
	c := app.New(kv, app.Options{})
	require.NoError(t, c.Load())

	var out bytes.Buffer
	l := Lock{Read: answers("1234", "4321"), Controller: c, Out: &out}
	assert.EqualError(t, l.Do(context.Background()), "lock: PINs do not match")
	assert.False(t, c.Locked())

	l.Read = answers("1234", "1234")
	require.NoError(t, l.Do(context.Background()))
	assert.True(t, c.Locked())
	assert.NoError(t, c.Unlock("1234"))
	_, err := kv.Read(store.KeyPIN)
	assert.NoError(t, err)

	l = Lock{Clear: true, Controller: c, Out: &out}
	require.NoError(t, l.Do(context.Background()))
	assert.False(t, c.Locked())
	assert.Equal(t, "PIN set\nPIN cleared\n", out.String())
}

func TestLockWithoutTerminal(t *testing.T) {
	c := app.New(store.NewMemory(), app.Options{})
	l := Lock{Controller: c, Out: &bytes.Buffer{}}
	assert.Error(t, l.Do(context.Background()))
}
