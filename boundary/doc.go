// Package boundary defines boundary conditions for steady diffusion problems.
//
// A Condition is a capability: it selects the boundary faces it covers through
// the mesh (AppliesAt) and says what it adds to the owning cell's equation
// (Contribute). The assembler only sees this interface, so it never depends on
// how a particular mesh lays out its faces.
//
// Two conditions are provided:
//
//   - FixedValue (Dirichlet): the field equals Value on the face.
//   - FixedFlux (Neumann): the outward normal gradient equals Value on the face.
package boundary
