package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSG90Preset(t *testing.T) {
	s := SG90()
	assert.Equal(t, "sg90", s.Name)
	assert.Equal(t, 12.2, s.BodyWidth)
	assert.Equal(t, 23.5, s.BodyLength)
	assert.Equal(t, 22.5, s.BodyHeight)
	assert.Equal(t, 27.0, s.ScrewSpacingX)
	assert.NoError(t, s.Validate())
}

func TestServoValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Servo)
		wantErr error
	}{
		{
			name:   "preset is valid",
			mutate: func(s *Servo) {},
		},
		{
			name:    "zero body width rejected",
			mutate:  func(s *Servo) { s.BodyWidth = 0 },
			wantErr: ErrDimension,
		},
		{
			name:    "negative body length rejected",
			mutate:  func(s *Servo) { s.BodyLength = -1 },
			wantErr: ErrDimension,
		},
		{
			name:    "zero screw diameter rejected",
			mutate:  func(s *Servo) { s.ScrewDiameter = 0 },
			wantErr: ErrDimension,
		},
		{
			name:    "zero flange thickness rejected",
			mutate:  func(s *Servo) { s.FlangeThickness = 0 },
			wantErr: ErrDimension,
		},
		{
			name: "screw spacing below diameter rejected",
			mutate: func(s *Servo) {
				s.ScrewSpacingX = 1.5
				s.ScrewDiameter = 2.0
			},
			wantErr: ErrSpacing,
		},
		{
			name: "custom dimensions accepted",
			mutate: func(s *Servo) {
				s.BodyWidth = 10.0
				s.BodyLength = 20.0
				s.BodyHeight = 15.0
				s.ScrewSpacingX = 25.0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SG90()
			tt.mutate(&s)

			err := s.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
