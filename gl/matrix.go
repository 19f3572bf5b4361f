package gl

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/glmatrix/mat"
)

// mat4Size is the number of floats in a mat4 uniform.
const mat4Size = 16

// MatrixBuffer returns the 16 floats of m in the order uniformMatrix4fv
// expects with transpose disabled.
func MatrixBuffer(m mat.Matrix4x4) webgl.Float32ArrayBuffer {
	return appendMatrix(make(webgl.Float32ArrayBuffer, 0, mat4Size), m)
}

// MatrixBuffers packs matrices back to back, e.g. for a uniform block
// declaring a mat4 array.
func MatrixBuffers(ms ...mat.Matrix4x4) webgl.Float32ArrayBuffer {
	buf := make(webgl.Float32ArrayBuffer, 0, mat4Size*len(ms))
	for _, m := range ms {
		buf = appendMatrix(buf, m)
	}
	return buf
}

func appendMatrix(buf webgl.Float32ArrayBuffer, m mat.Matrix4x4) webgl.Float32ArrayBuffer {
	a := m.Mat4()
	return append(buf, a[:]...)
}
