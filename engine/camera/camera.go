package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// cameraImpl is the single implementation of Camera.
// Holds a world-space pose (translation + quaternion rotation) and
// perspective settings, and recomputes matrices whenever either changes.
type cameraImpl struct {
	mu *sync.Mutex

	translation [3]float32
	rotation    [4]float32 // unit quaternion (x, y, z, w)

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix              [16]float32
	projectionMatrix        [16]float32
	viewProjectionMatrix    [16]float32
	inverseProjectionMatrix [16]float32
}

// Camera is a transform sink with perspective settings. A controller pushes
// translation and rotation into it each frame; the camera never reads state
// back from the controller. View and projection matrices are recomputed on
// every pose or perspective mutation.
type Camera interface {
	// Translate moves the camera by a delta expressed in its local frame
	// (the delta is rotated by the current orientation before being applied),
	// so forward input tracks the view direction.
	//
	// Parameters:
	//   - x, y, z: translation delta in camera-local space
	Translate(x, y, z float32)

	// SetTranslation sets the camera's absolute world-space position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTranslation(x, y, z float32)

	// SetRotation sets the camera's absolute orientation.
	//
	// Parameters:
	//   - q: unit quaternion as (x, y, z, w)
	SetRotation(q [4]float32)

	// Translation returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space coordinates
	Translation() (x, y, z float32)

	// Rotation returns the camera's orientation.
	//
	// Returns:
	//   - [4]float32: unit quaternion as (x, y, z, w)
	Rotation() [4]float32

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix
	// as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// InverseProjectionMatrix returns the inverse of the current projection
	// matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the inverse projection matrix
	InverseProjectionMatrix() [16]float32

	// Uniform returns the GPU-aligned camera uniform (view-projection matrix
	// and world-space position) ready for buffer upload.
	//
	// Returns:
	//   - GPUCameraUniform: the current uniform contents
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings, identity
// rotation, and zero translation.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		rotation: [4]float32{0, 0, 0, 1},
		fov:      45.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Translate(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	wx, wy, wz := common.RotateByQuaternion(c.rotation, x, y, z)
	c.translation[0] += wx
	c.translation[1] += wy
	c.translation[2] += wz
	c.updateMatrices()
}

func (c *cameraImpl) SetTranslation(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translation = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetRotation(q [4]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = q
	c.updateMatrices()
}

func (c *cameraImpl) Translation() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.translation[0], c.translation[1], c.translation[2]
}

func (c *cameraImpl) Rotation() [4]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: c.translation,
	}
}

// updateMatrices recalculates the view, projection, view-projection, and
// inverse projection matrices from the current pose and perspective settings.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.ViewFromPose(c.viewMatrix[:],
		c.translation[0], c.translation[1], c.translation[2],
		c.rotation,
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
	common.Invert4(c.inverseProjectionMatrix[:], c.projectionMatrix[:])
}
