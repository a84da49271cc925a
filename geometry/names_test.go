package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupInput(t *testing.T) {
	for name, want := range map[string]Input{
		"wheelbase":      Wheelbase,
		"Wb":             Wheelbase,
		"fo":             FrontOverhang,
		"rear_overhang":  RearOverhang,
		"Lf":             LaserWidthFront,
		"Lb":             LaserWidthRear,
		"wheel_diameter": WheelDiameter,
		"Wbfr":           Wbfr,
		" hbbl ":         Hbbl,
	} {
		got, ok := LookupInput(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := LookupInput("Wxyz")
	assert.False(t, ok)
}

func TestEveryInputHasANameAndLabel(t *testing.T) {
	seen := map[string]bool{}
	for _, in := range Inputs() {
		assert.NotEmpty(t, in.String())
		assert.NotEmpty(t, in.Label())
		assert.False(t, seen[in.String()], "duplicate name %s", in)
		seen[in.String()] = true

		got, ok := LookupInput(in.String())
		assert.True(t, ok)
		assert.Equal(t, in, got)
	}
	assert.Len(t, Inputs(), 22)
}

func TestEveryDerivedHasAName(t *testing.T) {
	for _, d := range DerivedValues() {
		got, ok := LookupDerived(d.String())
		assert.True(t, ok, d.String())
		assert.Equal(t, d, got)
	}
	assert.Len(t, DerivedValues(), 22)
}

func TestWheelInputs(t *testing.T) {
	assert.Equal(t, Wbfl, FaceFront(RearLeft))
	assert.Equal(t, Wbbr, FaceBack(RearRight))
	assert.Equal(t, Hftr, HeightTop(FrontRight))
	assert.Equal(t, Hfbl, HeightBottom(FrontLeft))

	assert.Equal(t, HubOffsetRearRight, HubOffset(RearRight))
	assert.Equal(t, HeightCenterFrontRight, HeightCenter(FrontRight))
	assert.Equal(t, ToeRearLeft, Toe(RearLeft))
	assert.Equal(t, CamberFrontRight, Camber(FrontRight))

	assert.True(t, FrontRight.Front())
	assert.False(t, RearLeft.Front())
	assert.True(t, RearLeft.Left())
	assert.Equal(t, "rear_right", RearRight.String())
}

func TestInputAndDerivedKinds(t *testing.T) {
	assert.False(t, WheelDiameter.Reading())
	assert.True(t, Wffl.Reading())
	assert.True(t, Hbbr.Reading())

	assert.False(t, HubOffsetFrontLeft.Angle())
	assert.False(t, TrackWidthRear.Angle())
	assert.True(t, LaserHalfAngle.Angle())
	assert.True(t, CarYawAngle.Angle())
	assert.True(t, TotalToeRear.Angle())
}
