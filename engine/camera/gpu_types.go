package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the GLSL declaration matching GPUCameraUniform (std140, 144 bytes).
const GPUCameraUniformSource = `layout(std140) uniform CameraUniform {
	mat4 view;
	mat4 projection;
	vec4 eye;
};`

// GPUCameraUniform is the GPU-aligned representation of the camera uniform block.
// Matches the std140 layout of GPUCameraUniformSource exactly.
type GPUCameraUniform struct {
	View       [16]float32 // offset   0: world-to-camera matrix (mat4)
	Projection [16]float32 // offset  64: unhinge * scale (mat4)
	Eye        [3]float32  // offset 128: world-space eye position (vec4.xyz)
	_pad       float32     // offset 140: eye.w, always 1
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a little-endian byte buffer for upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Eye[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], math.Float32bits(1))
	return buf
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	return GPUCameraUniform{
		View:       c.ModelViewMatrix(),
		Projection: c.ProjectionMatrix(),
		Eye:        c.position,
	}
}
