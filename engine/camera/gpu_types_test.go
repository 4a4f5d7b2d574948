package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGPUCameraUniformLayout(t *testing.T) {
	c, _ := newTestCamera(t, WithOrientation(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	u := c.Uniform()

	if u.Size() != 144 {
		t.Fatalf("Size() = %d, want 144", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 144 {
		t.Fatalf("len(Marshal()) = %d, want 144", len(buf))
	}

	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}

	view := c.ModelViewMatrix()
	proj := c.ProjectionMatrix()
	for i := 0; i < 16; i++ {
		if read(i*4) != view[i] {
			t.Errorf("view[%d] = %v, want %v", i, read(i*4), view[i])
		}
		if read(64+i*4) != proj[i] {
			t.Errorf("projection[%d] = %v, want %v", i, read(64+i*4), proj[i])
		}
	}
	for i, want := range []float32{1, 2, 3, 1} {
		if read(128+i*4) != want {
			t.Errorf("eye[%d] = %v, want %v", i, read(128+i*4), want)
		}
	}
}
