package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClamp covers the three branches of the clamp.
func TestClamp(t *testing.T) {
	assert.Equal(t, float32(-90), Clamp(-120, -90, 90))
	assert.Equal(t, float32(90), Clamp(200, -90, 90))
	assert.Equal(t, float32(12.5), Clamp(12.5, -90, 90))
}

// TestLerp covers the endpoints and the midpoint.
func TestLerp(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 8, 0))
	assert.Equal(t, float32(8), Lerp(2, 8, 1))
	assert.InDelta(t, 5, Lerp(2, 8, 0.5), 1e-6)
}

// TestDegToRad checks the conversion at a few reference angles.
func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-6)
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1e-6)
	assert.Zero(t, DegToRad(0))
}

// TestQuaternionFromPitchYaw_UnitNorm verifies the quaternion stays unit
// length across a sweep of angles.
func TestQuaternionFromPitchYaw_UnitNorm(t *testing.T) {
	for _, pitch := range []float32{-1.5, -0.5, 0, 0.7, 1.5} {
		for _, yaw := range []float32{0, 1, 3, 6, -2} {
			q := QuaternionFromPitchYaw(pitch, yaw)
			norm := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
			assert.InDelta(t, 1, norm, 1e-5)
		}
	}
}

// TestQuaternionFromPitchYaw_RotatesForward verifies the composed rotation
// acting on the forward vector: a 90 degree yaw swings -Z onto -X, and a 90
// degree pitch tilts -Z up onto +Y.
func TestQuaternionFromPitchYaw_RotatesForward(t *testing.T) {
	qYaw := QuaternionFromPitchYaw(0, DegToRad(90))
	x, y, z := RotateByQuaternion(qYaw, 0, 0, -1)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)

	qPitch := QuaternionFromPitchYaw(DegToRad(90), 0)
	x, y, z = RotateByQuaternion(qPitch, 0, 0, -1)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}

// TestRotateByQuaternion_Identity verifies the identity quaternion leaves
// vectors untouched.
func TestRotateByQuaternion_Identity(t *testing.T) {
	q := [4]float32{0, 0, 0, 1}
	x, y, z := RotateByQuaternion(q, 3, -4, 5)
	assert.Equal(t, float32(3), x)
	assert.Equal(t, float32(-4), y)
	assert.Equal(t, float32(5), z)
}

// TestViewFromPose_IdentityPose verifies a camera at the origin with identity
// orientation yields the identity view matrix.
func TestViewFromPose_IdentityPose(t *testing.T) {
	var view [16]float32
	ViewFromPose(view[:], 0, 0, 0, [4]float32{0, 0, 0, 1})

	var want [16]float32
	Identity(want[:])
	for i := range want {
		assert.InDelta(t, want[i], view[i], 1e-6, "element %d", i)
	}
}

// TestViewFromPose_InvertsTranslation verifies the view matrix carries the
// negated camera position for an unrotated camera.
func TestViewFromPose_InvertsTranslation(t *testing.T) {
	var view [16]float32
	ViewFromPose(view[:], 1, 2, 3, [4]float32{0, 0, 0, 1})

	assert.InDelta(t, -1, view[12], 1e-6)
	assert.InDelta(t, -2, view[13], 1e-6)
	assert.InDelta(t, -3, view[14], 1e-6)
}

// TestViewFromPose_InvertsWorldTransform verifies the view matrix maps the
// camera's own world position to the view-space origin for a rotated pose.
func TestViewFromPose_InvertsWorldTransform(t *testing.T) {
	q := QuaternionFromPitchYaw(DegToRad(30), DegToRad(120))
	px, py, pz := float32(4), float32(-1), float32(7)

	var view [16]float32
	ViewFromPose(view[:], px, py, pz, q)

	// Column-major multiply of (px, py, pz, 1).
	vx := view[0]*px + view[4]*py + view[8]*pz + view[12]
	vy := view[1]*px + view[5]*py + view[9]*pz + view[13]
	vz := view[2]*px + view[6]*py + view[10]*pz + view[14]

	assert.InDelta(t, 0, vx, 1e-5)
	assert.InDelta(t, 0, vy, 1e-5)
	assert.InDelta(t, 0, vz, 1e-5)
}

// TestMul4_Identity verifies multiplying by the identity returns the other
// operand, in both orders.
func TestMul4_Identity(t *testing.T) {
	var ident [16]float32
	Identity(ident[:])

	m := [16]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	var out [16]float32
	Mul4(out[:], ident[:], m[:])
	assert.Equal(t, m, out)

	Mul4(out[:], m[:], ident[:])
	assert.Equal(t, m, out)
}

// TestInvert4_RoundTrip verifies M * M⁻¹ lands on the identity for an
// invertible matrix, and that a singular matrix is rejected.
func TestInvert4_RoundTrip(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], DegToRad(60), 16.0/9.0, 0.1, 100)

	var inv, product [16]float32
	require.True(t, Invert4(inv[:], proj[:]))
	Mul4(product[:], proj[:], inv[:])

	var ident [16]float32
	Identity(ident[:])
	for i := range ident {
		assert.InDelta(t, ident[i], product[i], 1e-4, "element %d", i)
	}

	var zero [16]float32
	assert.False(t, Invert4(inv[:], zero[:]))
}
