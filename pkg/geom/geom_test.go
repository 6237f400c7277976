package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, -2.0, Lerp(2, -2, 1))
}

func TestLerpPoint(t *testing.T) {
	p := LerpPoint(Point{X: 0, Y: 0}, Point{X: 4, Y: -8}, 0.25)
	assert.Equal(t, Point{X: 1, Y: -2}, p)
}

func TestRectPolygon(t *testing.T) {
	poly := RectPolygon(10, 4)
	require.Len(t, poly, 4)
	assert.Equal(t, Point{X: -5, Y: -2}, poly[0])
	assert.Equal(t, Point{X: 5, Y: -2}, poly[1])
	assert.Equal(t, Point{X: 5, Y: 2}, poly[2])
	assert.Equal(t, Point{X: -5, Y: 2}, poly[3])
}

func TestFrustumPolygonAtZ(t *testing.T) {
	base := RectPolygon(40, 30)
	top := RectPolygon(20, 10)

	tests := []struct {
		name string
		z    float64
		want []Point
	}{
		{name: "at base", z: 0, want: base},
		{name: "at top", z: 10, want: top},
		{name: "midway", z: 5, want: RectPolygon(30, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FrustumPolygonAtZ(tt.z, 10, base, top)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i].X, got[i].X, 1e-9)
				assert.InDelta(t, tt.want[i].Y, got[i].Y, 1e-9)
			}
		})
	}
}

func TestFrustumPolygonAtZErrors(t *testing.T) {
	base := RectPolygon(40, 30)

	_, err := FrustumPolygonAtZ(5, 0, base, base)
	assert.ErrorIs(t, err, ErrZeroHeight)

	_, err = FrustumPolygonAtZ(5, 10, base, base[:3])
	assert.ErrorIs(t, err, ErrVertexMismatch)
}

func TestOffsetConvexInward(t *testing.T) {
	// A 10x10 square inset by 2 is a 6x6 square.
	inner, err := OffsetConvexInward(RectPolygon(10, 10), 2)
	require.NoError(t, err)

	want := RectPolygon(6, 6)
	require.Len(t, inner, 4)
	for i := range inner {
		assert.InDelta(t, want[i].X, inner[i].X, 1e-9)
		assert.InDelta(t, want[i].Y, inner[i].Y, 1e-9)
	}
}

func TestOffsetConvexInwardTriangle(t *testing.T) {
	// Right triangle with legs on the axes. Insetting by 1 keeps each
	// offset vertex exactly 1 away from both adjacent edges.
	tri := []Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 6}}
	inner, err := OffsetConvexInward(tri, 1)
	require.NoError(t, err)
	require.Len(t, inner, 3)

	// The corner at the origin moves to (1, 1).
	assert.InDelta(t, 1.0, inner[0].X, 1e-9)
	assert.InDelta(t, 1.0, inner[0].Y, 1e-9)
}

func TestOffsetConvexInwardDegenerate(t *testing.T) {
	_, err := OffsetConvexInward([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1)
	assert.ErrorIs(t, err, ErrDegenerate)

	// Repeated vertex produces a zero-length edge.
	_, err = OffsetConvexInward([]Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}, 1)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestFrustumInnerPolygonAtZ(t *testing.T) {
	base := RectPolygon(42, 32)
	top := RectPolygon(30, 20)

	inner, err := FrustumInnerPolygonAtZ(0, 28.8, base, top, 2.5)
	require.NoError(t, err)

	want := RectPolygon(42-5, 32-5)
	require.Len(t, inner, 4)
	for i := range inner {
		assert.InDelta(t, want[i].X, inner[i].X, 1e-9)
		assert.InDelta(t, want[i].Y, inner[i].Y, 1e-9)
	}
}
