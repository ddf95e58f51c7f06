package host

import (
	"image"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~whereswaldon/ratecurve/chart"
	"git.sr.ht/~whereswaldon/ratecurve/geometry"
)

func TestResizeNotifies(t *testing.T) {
	h := New(image.Pt(400, 300))
	var got [][2]float64
	cancel := h.ObserveSize(func(w, ht float64) {
		got = append(got, [2]float64{w, ht})
	})

	h.Resize(image.Pt(400, 300))
	assert.Empty(t, got, "an unchanged size is not reported")

	h.Resize(image.Pt(800, 300))
	assert.Equal(t, [][2]float64{{800, 300}}, got)

	cancel()
	h.Resize(image.Pt(100, 100))
	assert.Len(t, got, 1)
	w, ht := h.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, ht)
}

func TestSetOrigin(t *testing.T) {
	h := New(image.Pt(400, 300))
	calls := 0
	h.ObserveSize(func(float64, float64) { calls++ })

	h.SetOrigin(image.Pt(0, 48))
	assert.Equal(t, geometry.Pt(0, 48), h.Origin())
	assert.Equal(t, 1, calls)

	h.SetOrigin(image.Pt(0, 48))
	assert.Equal(t, 1, calls)
}

func TestMountedWidget(t *testing.T) {
	h := New(image.Pt(400, 300))
	w, err := chart.New([]geometry.Point{{X: 0, Y: 0}, {X: 0.5, Y: 0.1}, {X: 1, Y: 0.5}}, 0.5, chart.Config{})
	require.NoError(t, err)
	require.NoError(t, w.Mount(h))
	assert.Equal(t, 380.0, w.ChartGizmo().X2)
	assert.Len(t, h.sizes, 1)
	assert.Len(t, h.pointer, 1)

	h.notifyPointer(chart.PointerEvent{Kind: chart.PointerMove, Position: geometry.Pt(140, 100)})
	_, active := w.Hover()
	assert.True(t, active)
	h.notifyPointer(chart.PointerEvent{Kind: chart.PointerLeave})
	_, active = w.Hover()
	assert.False(t, active)

	h.Resize(image.Pt(800, 300))
	assert.Equal(t, 780.0, w.ChartGizmo().X2)

	require.NoError(t, w.Unmount())
	assert.Nil(t, h.view)
	assert.Empty(t, h.sizes)
	assert.Empty(t, h.pointer)
}

func TestLayout(t *testing.T) {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(640, 480)),
	}

	h := New(image.Pt(400, 300))
	dims := h.Layout(gtx, th)
	assert.Equal(t, image.Pt(640, 480), dims.Size, "an empty host still fills its constraints")

	w, err := chart.New([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0.5, chart.Config{})
	require.NoError(t, err)
	require.NoError(t, w.Mount(h))
	assert.Equal(t, 620.0, w.ChartGizmo().X2)

	gtx.Ops.Reset()
	h.Layout(gtx, th)
	tw, tht := w.Reference().Size()
	assert.Positive(t, tw, "the reference tooltip is measured while laid out")
	assert.Positive(t, tht)
}
