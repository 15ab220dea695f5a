// Package assets keeps track of loaded sprite sheets. The scene only stores
// handles; hosts resolve a handle to pixels through their own image cache.
package assets

import "fmt"

// Handle refers to an atlas registered in a Server. The zero Handle is never
// issued.
type Handle uint32

func (h Handle) String() string {
	return fmt.Sprintf("atlas#%d", uint32(h))
}

// Atlas describes a sprite sheet as a grid of equally sized cells, indexed
// row by row starting at the top left.
type Atlas struct {
	Name    string
	Columns int
	Rows    int
	CellW   int
	CellH   int
}

func (a Atlas) Len() int {
	return a.Columns * a.Rows
}

// Cell returns the pixel rectangle origin of cell index. ok is false when the
// index falls outside the grid.
func (a Atlas) Cell(index int) (x, y int, ok bool) {
	if a.Columns <= 0 || index < 0 || index >= a.Len() {
		return 0, 0, false
	}
	return (index % a.Columns) * a.CellW, (index / a.Columns) * a.CellH, true
}

type Server struct {
	next    Handle
	atlases map[Handle]Atlas
}

func NewServer() *Server {
	return &Server{next: 1, atlases: make(map[Handle]Atlas)}
}

func (s *Server) Add(a Atlas) Handle {
	h := s.next
	s.next++
	s.atlases[h] = a
	return h
}

func (s *Server) Get(h Handle) (Atlas, bool) {
	a, ok := s.atlases[h]
	return a, ok
}
