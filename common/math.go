package common

import "math"

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space convention of [0, 1] depth.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the Laplace
// expansion (cofactor) method. If the matrix is singular (determinant ≈ 0) the
// output is left unchanged and the function returns false.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(out, m []float32) bool {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}

	invDet := 1.0 / det

	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	return true
}

// DegToRad converts an angle from degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: angle in radians
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180.0)
}

// Clamp limits v to the inclusive range [min, max].
//
// Parameters:
//   - v: value to clamp
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float32: v limited to [min, max]
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp performs a linear interpolation from a toward b by factor t.
//
// Parameters:
//   - a: start value (returned when t = 0)
//   - b: end value (returned when t = 1)
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// QuaternionFromPitchYaw builds a unit quaternion from pitch (rotation around
// the X axis) and yaw (rotation around the Y axis) with zero roll. The yaw
// rotation is applied after the pitch rotation (q = qYaw * qPitch), the usual
// first-person camera composition.
//
// Parameters:
//   - pitch: rotation around the X axis in radians
//   - yaw: rotation around the Y axis in radians
//
// Returns:
//   - [4]float32: the quaternion as (x, y, z, w)
func QuaternionFromPitchYaw(pitch, yaw float32) [4]float32 {
	sp := float32(math.Sin(float64(pitch) / 2))
	cp := float32(math.Cos(float64(pitch) / 2))
	sy := float32(math.Sin(float64(yaw) / 2))
	cy := float32(math.Cos(float64(yaw) / 2))

	return [4]float32{
		cy * sp,  // x
		cp * sy,  // y
		-sy * sp, // z
		cy * cp,  // w
	}
}

// RotateByQuaternion rotates the vector (x, y, z) by the unit quaternion q.
// Uses the expanded form v' = v + 2*cross(q.xyz, cross(q.xyz, v) + q.w*v),
// which avoids constructing a rotation matrix.
//
// Parameters:
//   - q: unit quaternion as (x, y, z, w)
//   - x, y, z: vector components to rotate
//
// Returns:
//   - rx, ry, rz: the rotated vector components
func RotateByQuaternion(q [4]float32, x, y, z float32) (rx, ry, rz float32) {
	// t = 2 * cross(q.xyz, v)
	tx := 2 * (q[1]*z - q[2]*y)
	ty := 2 * (q[2]*x - q[0]*z)
	tz := 2 * (q[0]*y - q[1]*x)

	// v' = v + q.w*t + cross(q.xyz, t)
	rx = x + q[3]*tx + (q[1]*tz - q[2]*ty)
	ry = y + q[3]*ty + (q[2]*tx - q[0]*tz)
	rz = z + q[3]*tz + (q[0]*ty - q[1]*tx)
	return
}

// ViewFromPose builds a view matrix from a camera world-space pose: the
// inverse of the camera's translate-then-rotate world transform. The result
// transforms world coordinates to view/camera space and is stored in
// column-major order.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - px, py, pz: camera position in world space
//   - q: camera orientation as a unit quaternion (x, y, z, w)
func ViewFromPose(out []float32, px, py, pz float32, q [4]float32) {
	x, y, z, w := q[0], q[1], q[2], q[3]

	// Rotation matrix R of the camera orientation (world = R * local).
	r00 := 1 - 2*(y*y+z*z)
	r01 := 2 * (x*y - w*z)
	r02 := 2 * (x*z + w*y)
	r10 := 2 * (x*y + w*z)
	r11 := 1 - 2*(x*x+z*z)
	r12 := 2 * (y*z - w*x)
	r20 := 2 * (x*z - w*y)
	r21 := 2 * (y*z + w*x)
	r22 := 1 - 2*(x*x+y*y)

	// View rotation is R transposed; view translation is -Rᵀ * position.
	out[0], out[1], out[2], out[3] = r00, r01, r02, 0
	out[4], out[5], out[6], out[7] = r10, r11, r12, 0
	out[8], out[9], out[10], out[11] = r20, r21, r22, 0
	out[12] = -(r00*px + r10*py + r20*pz)
	out[13] = -(r01*px + r11*py + r21*pz)
	out[14] = -(r02*px + r12*py + r22*pz)
	out[15] = 1
}
