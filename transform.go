package tactile

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// UpdateTransforms refreshes the cached world transforms of n's subtree, with
// n treated as a root. Scene.Update calls this for the scene root each frame.
func (n *Node) UpdateTransforms() {
	updateWorldTransform(n, identityTransform, false)
}

// composedWorld builds the world matrix by walking the parent chain. Unlike
// the cached worldTransform it is valid between frames.
func (n *Node) composedWorld() [6]float64 {
	if n == nil {
		return identityTransform
	}
	return multiplyAffine(n.Parent.composedWorld(), computeLocalTransform(n))
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- World pose ---

// WorldPosition returns the world-space location of the node's position
// point (its pivot).
func (n *Node) WorldPosition() Vec2 {
	x, y := transformPoint(n.Parent.composedWorld(), n.X, n.Y)
	return Vec2{x, y}
}

// SetWorldPosition moves the node so its pivot lands on the given world point.
func (n *Node) SetWorldPosition(wx, wy float64) {
	p := n.LocalPositionFor(wx, wy)
	n.SetPosition(p.X, p.Y)
}

// LocalPositionFor returns the local X and Y that would put the node's pivot
// on the given world point under its current parent.
func (n *Node) LocalPositionFor(wx, wy float64) Vec2 {
	x, y := transformPoint(invertAffine(n.Parent.composedWorld()), wx, wy)
	return Vec2{x, y}
}

// WorldRotation returns the accumulated rotation of the node and its ancestors.
func (n *Node) WorldRotation() float64 {
	var r float64
	for p := n; p != nil; p = p.Parent {
		r += p.Rotation
	}
	return r
}

// SetWorldRotation sets the local rotation so the accumulated rotation equals r.
func (n *Node) SetWorldRotation(r float64) {
	n.SetRotation(n.LocalRotationFor(r))
}

// LocalRotationFor returns the local rotation giving world rotation r.
func (n *Node) LocalRotationFor(r float64) float64 {
	if n.Parent == nil {
		return r
	}
	return r - n.Parent.WorldRotation()
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}
