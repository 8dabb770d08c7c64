package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSpinnerViewBeforeFirstPair(t *testing.T) {
	m := newCompareSpinnerModel("in.txt", nil)

	assert.Contains(t, m.View(), "Comparing sequences in 'in.txt'...")
}

func TestCompareSpinnerViewShowsPairProgress(t *testing.T) {
	m := newCompareSpinnerModel("in.txt", nil)

	updated, cmd := m.Update(compareProgressMsg{done: 33, total: 66})
	assert.Nil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "Comparing pairs 33/66")
	assert.Contains(t, view, "[==========----------] 50%")
}

func TestCompareSpinnerQuitsWithWorkError(t *testing.T) {
	m := newCompareSpinnerModel("in.txt", nil)
	errBoom := errors.New("boom")

	updated, cmd := m.Update(compareDoneMsg{err: errBoom})
	assert.NotNil(t, cmd)

	final, ok := updated.(compareSpinnerModel)
	assert.True(t, ok)
	assert.ErrorIs(t, final.err, errBoom)
	assert.Empty(t, final.View())
}
