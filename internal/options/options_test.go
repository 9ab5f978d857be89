package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	value int
	name  string
}

func TestApply_Order(t *testing.T) {
	tgt := &target{}

	err := Apply(tgt,
		NoError(func(tg *target) { tg.value = 1 }),
		NoError(func(tg *target) { tg.value = 2 }),
		NoError(func(tg *target) { tg.name = "done" }),
	)
	require.NoError(t, err)
	require.Equal(t, 2, tgt.value)
	require.Equal(t, "done", tgt.name)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	tgt := &target{}
	boom := errors.New("boom")

	err := Apply(tgt,
		NoError(func(tg *target) { tg.value = 1 }),
		New(func(*target) error { return boom }),
		NoError(func(tg *target) { tg.value = 99 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, tgt.value)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}
