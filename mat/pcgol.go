package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
)

// Mat4 flattens m row by row. The result has the memory layout of an OpenGL
// mat4 (translation in elements 12 to 14), so it can be passed to
// uniformMatrix4fv with transpose disabled.
func (m Matrix4x4) Mat4() pcmat.Mat4 {
	var out pcmat.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*i+j] = m.m[i][j]
		}
	}
	return out
}

// FromMat4 is the inverse of Matrix4x4.Mat4.
func FromMat4(a pcmat.Mat4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.m[i][j] = a[4*i+j]
		}
	}
	return out
}

// Transform applies m to the point p (w = 1) and divides the result by its
// w component. Points mapped to w = 0 come back as NaN or Inf.
func (m Matrix4x4) Transform(p pcmat.Vec3) pcmat.Vec3 {
	return m.Mat4().Transform(p)
}

// TransformAffine applies m to the point p (w = 1) and drops the w component.
func (m Matrix4x4) TransformAffine(p pcmat.Vec3) pcmat.Vec3 {
	return m.Mat4().TransformAffine(p)
}
