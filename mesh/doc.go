// Package mesh describes the control volumes a diffusion problem is solved on.
//
// A Mesh is a pure value object: once constructed it never changes and may be
// shared read-only across goroutines.
//
// Line is the uniform 1D chain of N cells of width dx:
//
//	face 0    face 1    face 2          face N
//	  |  cell 0 |  cell 1 |  ...  | cell N-1 |
//	  x=0                                    x=N*dx
//
// Cell i is centred at (i+0.5)*dx. Faces 0 and N are boundary faces, all others
// are interior faces shared by two cells. Boundary conditions select faces via
// FacesLeft/FacesRight rather than by inspecting the layout, so other mesh
// shapes can plug into the same assembler.
package mesh
