package gl

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/glmatrix/mat"
)

// UniformMatrix uploads m to a mat4 uniform of the current program.
func UniformMatrix(gl *webgl.WebGL, loc webgl.Location, m mat.Matrix4x4) {
	gl.UniformMatrix4fv(loc, false, m.Mat4())
}

// BufferMatrices fills the buffer bound to t with ms packed back to back.
func BufferMatrices(gl *webgl.WebGL, t webgl.BufferType, usage webgl.BufferUsage, ms ...mat.Matrix4x4) {
	gl.BufferData(t, MatrixBuffers(ms...), usage)
}
