package gfx

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/text"
)

func TestOffsetTranslatesCalls(t *testing.T) {
	rec := NewRecorder(image.Rect(0, 0, 100, 100))
	s := Offset(Offset(rec, image.Pt(10, 0)), image.Pt(0, 5))

	require.NoError(t, s.FillRect(image.Rect(0, 0, 4, 4), colors.Red))
	require.NoError(t, s.StrokeRect(image.Rect(1, 1, 2, 2), colors.Blue, 1))
	require.NoError(t, s.DrawText(image.Rect(0, 0, 10, 10), "x", Centered(text.Basic(), colors.Black)))

	require.Len(t, rec.Ops, 3)
	assert.Equal(t, image.Rect(10, 5, 14, 9), rec.Ops[0].Rect)
	assert.Equal(t, image.Rect(11, 6, 12, 7), rec.Ops[1].Rect)
	assert.Equal(t, image.Rect(10, 5, 20, 15), rec.Ops[2].Rect)
	assert.Equal(t, image.Rect(-10, -5, 90, 95), s.Bounds())
}

func TestOffsetZeroIsIdentity(t *testing.T) {
	rec := NewRecorder(image.Rect(0, 0, 1, 1))
	assert.Same(t, rec, Offset(rec, image.Point{}))
}

func TestRecorderFailAfter(t *testing.T) {
	boom := errors.New("boom")
	rec := NewRecorder(image.Rect(0, 0, 10, 10))
	rec.FailAfter = 1
	rec.Err = boom

	assert.NoError(t, rec.FillRect(image.Rect(0, 0, 1, 1), colors.White))
	assert.ErrorIs(t, rec.FillRect(image.Rect(0, 0, 1, 1), colors.White), boom)
	assert.Len(t, rec.Ops, 1)
}

func TestInset(t *testing.T) {
	assert.Equal(t, image.Rect(2, 2, 8, 8), Inset(image.Rect(0, 0, 10, 10), 2))
	assert.True(t, Inset(image.Rect(0, 0, 4, 4), 3).Empty())
	assert.Equal(t, image.Rect(0, 0, 4, 4), Inset(image.Rect(0, 0, 4, 4), 0))
}
