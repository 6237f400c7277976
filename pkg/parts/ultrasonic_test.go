package parts

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-robotics/robocad/pkg/types"
)

func TestDefaultUltrasonicSensorMount(t *testing.T) {
	u := DefaultUltrasonicSensorMount()
	assert.Equal(t, 3.0, u.MountThickness)
	assert.Equal(t, 11.0, u.FlangeLength)
	assert.Equal(t, 24.0, u.FlangeHoleSpacing)
	assert.NoError(t, u.Validate())
}

func TestUltrasonicSensorMountValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UltrasonicSensorMount)
		wantErr error
	}{
		{
			name:    "zero mount thickness rejected",
			mutate:  func(u *UltrasonicSensorMount) { u.MountThickness = 0 },
			wantErr: types.ErrDimension,
		},
		{
			name:    "zero flange length rejected",
			mutate:  func(u *UltrasonicSensorMount) { u.FlangeLength = 0 },
			wantErr: types.ErrDimension,
		},
		{
			name:    "bad board spec rejected",
			mutate:  func(u *UltrasonicSensorMount) { u.Spec.WindowSeparation = 1.0 },
			wantErr: types.ErrSpacing,
		},
		{
			name:    "flange holes off the flange rejected",
			mutate:  func(u *UltrasonicSensorMount) { u.FlangeHoleSpacing = 60.0 },
			wantErr: ErrDoesNotFit,
		},
		{
			name: "flange screw wider than flange rejected",
			mutate: func(u *UltrasonicSensorMount) {
				u.FlangeLength = 1.5
				u.FlangeScrewDiameter = 2.0
			},
			wantErr: ErrDoesNotFit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := DefaultUltrasonicSensorMount()
			tt.mutate(u)

			_, err := u.Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUltrasonicSensorMountBuild(t *testing.T) {
	u := DefaultUltrasonicSensorMount()
	solid, err := u.Build()
	require.NoError(t, err)

	plateW := u.Spec.BoardWidth + 2*u.MarginX
	plateH := u.Spec.BoardHeight + 2*u.MarginY

	// Bounding box: plate footprint in X/Y, flange length in Z.
	bb := solid.BoundingBox()
	size := bb.Size()
	assert.InDelta(t, plateW, size.X, 1e-6)
	assert.InDelta(t, plateH, size.Y, 1e-6)
	assert.InDelta(t, u.FlangeLength, size.Z, 1e-6)

	mid := u.MountThickness / 2
	// Transducer window centers are holes.
	assert.Positive(t, solid.Evaluate(v3.Vec{X: u.Spec.WindowSeparation / 2, Y: 0, Z: mid}))
	assert.Positive(t, solid.Evaluate(v3.Vec{X: -u.Spec.WindowSeparation / 2, Y: 0, Z: mid}))
	// PCB screw hole centers are holes.
	hx, hy := u.Spec.MountHoleSpacingX/2, u.Spec.MountHoleSpacingY/2
	assert.Positive(t, solid.Evaluate(v3.Vec{X: hx, Y: hy, Z: mid}))
	assert.Positive(t, solid.Evaluate(v3.Vec{X: -hx, Y: -hy, Z: mid}))
	// Material between the windows.
	assert.Negative(t, solid.Evaluate(v3.Vec{X: 0, Y: 0, Z: mid}))

	// The flange is material ahead of the plate at its bottom edge.
	flangeY := -(plateH - u.FlangeThickness) / 2
	assert.Negative(t, solid.Evaluate(v3.Vec{X: 0, Y: flangeY, Z: u.FlangeLength - 1.0}))
	// Flange screw holes pass through the flange thickness.
	assert.Positive(t, solid.Evaluate(v3.Vec{
		X: u.FlangeHoleSpacing / 2,
		Y: flangeY,
		Z: u.FlangeLength / 2,
	}))
	// Past the flange tip there is nothing.
	assert.Positive(t, solid.Evaluate(v3.Vec{X: 0, Y: flangeY, Z: u.FlangeLength + 1.0}))
}
