package cad

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Plate returns a w x h rectangle profile with rounded corners.
func Plate(w, h, round float64) (sdf.SDF2, error) {
	return sdf.Box2D(v2.Vec{X: w, Y: h}, round), nil
}

// Holes subtracts circular holes of the given diameter at each center from
// the profile.
func Holes(profile sdf.SDF2, diameter float64, centers ...v2.Vec) (sdf.SDF2, error) {
	hole, err := sdf.Circle2D(diameter / 2)
	if err != nil {
		return nil, fmt.Errorf("hole diameter %g: %w", diameter, err)
	}
	for _, c := range centers {
		profile = sdf.Difference2D(profile, sdf.Transform2D(hole, sdf.Translate2d(c)))
	}
	return profile, nil
}

// OnBase translates a solid that the kernel built symmetrically about the
// XY plane so its base sits on Z=0.
func OnBase(s sdf.SDF3, height float64) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
}

// At translates a solid to the given position.
func At(s sdf.SDF3, x, y, z float64) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}))
}
