package mesh

// Mesh is the read-only view of a set of control volumes that assemblers and
// verifiers depend on.
type Mesh interface {
	// CellCount returns the number of control volumes (> 0).
	CellCount() int

	// CellCenters returns the x coordinate of each cell centre, in cell order.
	// The slice is a fresh copy owned by the caller.
	CellCenters() []float64

	// CellVolume returns the measure of cell i.
	CellVolume(i int) float64

	// DomainLength returns the extent of the domain along x.
	DomainLength() float64

	// Faces returns every face, interior and boundary, ordered by Index.
	Faces() []Face

	// FacesLeft returns the indices of the boundary faces at the minimum x.
	FacesLeft() []int

	// FacesRight returns the indices of the boundary faces at the maximum x.
	FacesRight() []int
}

// Face connects an owner cell to a neighbour cell, or to the outside of the
// domain when Neighbor < 0.
type Face struct {
	Index    int     // position in Mesh.Faces()
	Owner    int     // cell on the owner side
	Neighbor int     // cell on the other side, -1 on a boundary
	Area     float64 // face measure (1 for a 1D line)
	Distance float64 // owner-centre to neighbour-centre, or owner-centre to face on a boundary
	Normal   float64 // outward unit normal along x as seen from Owner (-1 or +1)
}

// IsBoundary reports whether the face lies on the domain boundary.
func (f Face) IsBoundary() bool { return f.Neighbor < 0 }

// Config is the immutable construction input of a Line.
type Config struct {
	CellCount int     // number of cells, > 0
	CellWidth float64 // width of every cell, > 0
}
