// Package blockmat: View is a possibly-aliasing block-indexed window over
// a dense complex matrix. Owners hold their buffer exclusively;
// references share the owner's buffer and partition arrays, so mutating
// through a reference mutates the owner's storage.

package blockmat

import (
	"fmt"

	"github.com/katalvlaran/negf/zmat"
)

// View is a block-structured window over a dense matrix. The zero value
// is not usable; construct with NewView or NewViewRect.
//
// The active range is held in element units and the block structure is
// read off the shared partitions on every access, so a re-partition
// through any view sharing a partition is immediately visible through
// all of them, the owner included.
type View struct {
	data zmat.General // full underlying buffer
	rows *Partition   // full row partition, shared by references
	cols *Partition   // full column partition, shared by references

	// Active sub-range, in element units. Both endpoints always lie on
	// block boundaries of the current partitions.
	rowStart, colStart int
	rowLen, colLen     int

	owner bool // capability flag: re-partitioning requires it
	rev   bool // mirrored block indexing (block i ↦ k-1-i)
}

// validGeneral reports basic storage sanity for an input matrix.
func validGeneral(m zmat.General) bool {
	if m.Rows <= 0 || m.Cols <= 0 || m.Stride < m.Cols {
		return false
	}

	return len(m.Data) >= (m.Rows-1)*m.Stride+m.Cols
}

// NewView builds an owner view over a deep copy of m with the same block
// sizes on rows and columns. A nil sizes slice means a single block
// covering the whole matrix. Fails with ErrBadMatrix on broken storage
// and ErrInvalidPartition when sizes do not tile m (an oversized or
// undersized partition is rejected, never clamped).
func NewView(m zmat.General, sizes []int) (*View, error) {
	if !validGeneral(m) {
		return nil, ErrBadMatrix
	}
	if sizes == nil {
		return NewViewRect(m, []int{m.Rows}, []int{m.Cols})
	}

	return NewViewRect(m, sizes, sizes)
}

// NewViewRect builds an owner view with independent row and column block
// sizes.
func NewViewRect(m zmat.General, rowSizes, colSizes []int) (*View, error) {
	if !validGeneral(m) {
		return nil, ErrBadMatrix
	}
	rp, err := NewPartition(rowSizes, m.Rows)
	if err != nil {
		return nil, fmt.Errorf("row partition: %w", err)
	}
	cp, err := NewPartition(colSizes, m.Cols)
	if err != nil {
		return nil, fmt.Errorf("column partition: %w", err)
	}

	return &View{
		data:   zmat.Clone(m),
		rows:   rp,
		cols:   cp,
		rowLen: m.Rows,
		colLen: m.Cols,
		owner:  true,
	}, nil
}

// Owner reports whether v exclusively holds its buffer.
func (v *View) Owner() bool { return v.owner }

// rowRange resolves the active row span against the current shared
// partition. colRange likewise for columns.
func (v *View) rowRange() (off, count int) {
	return v.rows.blockRange(v.rowStart, v.rowLen)
}

func (v *View) colRange() (off, count int) {
	return v.cols.blockRange(v.colStart, v.colLen)
}

// BlockRows returns the number of block rows in the active range.
func (v *View) BlockRows() int {
	_, cnt := v.rowRange()

	return cnt
}

// BlockCols returns the number of block columns in the active range.
func (v *View) BlockCols() int {
	_, cnt := v.colRange()

	return cnt
}

// Rows returns the total element rows of the active range.
func (v *View) Rows() int { return v.rowLen }

// Cols returns the total element columns of the active range.
func (v *View) Cols() int { return v.colLen }

// absRow maps a view-order block row index (possibly negative) to an
// absolute partition index.
func (v *View) absRow(i int) (int, error) {
	off, cnt := v.rowRange()
	if i < 0 {
		i += cnt
	}
	if i < 0 || i >= cnt {
		return 0, fmt.Errorf("block row %d of %d: %w", i, cnt, ErrIndexOutOfRange)
	}
	if v.rev {
		i = cnt - 1 - i
	}

	return off + i, nil
}

// absCol maps a view-order block column index to an absolute partition
// index.
func (v *View) absCol(j int) (int, error) {
	off, cnt := v.colRange()
	if j < 0 {
		j += cnt
	}
	if j < 0 || j >= cnt {
		return 0, fmt.Errorf("block col %d of %d: %w", j, cnt, ErrIndexOutOfRange)
	}
	if v.rev {
		j = cnt - 1 - j
	}

	return off + j, nil
}

// BlockRowSize returns the element rows of block row i in view order.
func (v *View) BlockRowSize(i int) (int, error) {
	ri, err := v.absRow(i)
	if err != nil {
		return 0, err
	}

	return v.rows.sizes[ri], nil
}

// BlockColSize returns the element columns of block column j in view
// order.
func (v *View) BlockColSize(j int) (int, error) {
	cj, err := v.absCol(j)
	if err != nil {
		return 0, err
	}

	return v.cols.sizes[cj], nil
}

// BlockRowSizes returns the active block row sizes in view order, O(k).
func (v *View) BlockRowSizes() []int {
	off, cnt := v.rowRange()
	out := make([]int, cnt)
	for i := range out {
		si := off + i
		if v.rev {
			si = off + cnt - 1 - i
		}
		out[i] = v.rows.sizes[si]
	}

	return out
}

// BlockColSizes returns the active block column sizes in view order.
func (v *View) BlockColSizes() []int {
	off, cnt := v.colRange()
	out := make([]int, cnt)
	for j := range out {
		sj := off + j
		if v.rev {
			sj = off + cnt - 1 - j
		}
		out[j] = v.cols.sizes[sj]
	}

	return out
}

// Block returns a mutable aliasing sub-matrix at block row i, block
// column j. Negative indices count from the end of the active range.
// Writes through the result mutate the view's underlying buffer.
func (v *View) Block(i, j int) (zmat.General, error) {
	ri, err := v.absRow(i)
	if err != nil {
		return zmat.General{}, err
	}
	cj, err := v.absCol(j)
	if err != nil {
		return zmat.General{}, err
	}

	r0, c0 := v.rows.offsets[ri], v.cols.offsets[cj]

	return zmat.General{
		Rows:   v.rows.sizes[ri],
		Cols:   v.cols.sizes[cj],
		Stride: v.data.Stride,
		Data:   v.data.Data[r0*v.data.Stride+c0:],
	}, nil
}

// Blocks returns a reference view over a contiguous block range starting
// at (i, j). Negative rowCount/colCount count backward, selecting the
// blocks that end just before (i, j) — the signed-count convention of
// blocks-range selection. The result aliases v's buffer and partitions.
func (v *View) Blocks(i, j, rowCount, colCount int) (*View, error) {
	rowOff, rowCnt := v.rowRange()
	colOff, colCnt := v.colRange()
	if i < 0 {
		i += rowCnt
	}
	if j < 0 {
		j += colCnt
	}
	if rowCount < 0 {
		i, rowCount = i+rowCount, -rowCount
	}
	if colCount < 0 {
		j, colCount = j+colCount, -colCount
	}
	if rowCount == 0 || colCount == 0 {
		return nil, fmt.Errorf("empty block range: %w", ErrIndexOutOfRange)
	}
	if i < 0 || i+rowCount > rowCnt || j < 0 || j+colCount > colCnt {
		return nil, fmt.Errorf("block range (%d,%d)+(%d,%d): %w", i, j, rowCount, colCount, ErrIndexOutOfRange)
	}

	ri := rowOff + i
	cj := colOff + j
	if v.rev {
		ri = rowOff + rowCnt - i - rowCount
		cj = colOff + colCnt - j - colCount
	}

	rowStart := v.rows.offsets[ri]
	colStart := v.cols.offsets[cj]
	rowLen, colLen := 0, 0
	for b := 0; b < rowCount; b++ {
		rowLen += v.rows.sizes[ri+b]
	}
	for b := 0; b < colCount; b++ {
		colLen += v.cols.sizes[cj+b]
	}

	return &View{
		data:     v.data,
		rows:     v.rows,
		cols:     v.cols,
		rowStart: rowStart,
		colStart: colStart,
		rowLen:   rowLen,
		colLen:   colLen,
		rev:      v.rev,
	}, nil
}

// Reverse returns a reference view whose block indexing is mirrored:
// block i of the result is block k-1-i of v, on both rows and columns.
// The backward Green's function recursions run on a reversed view so the
// forward formulas apply verbatim.
func (v *View) Reverse() *View {
	r := *v
	r.owner = false
	r.rev = !v.rev

	return &r
}

// Matrix returns the dense active range as an aliasing sub-matrix, in
// storage order. Reversal affects block indexing only, not the storage
// rectangle returned here.
func (v *View) Matrix() zmat.General {
	return zmat.General{
		Rows:   v.rowLen,
		Cols:   v.colLen,
		Stride: v.data.Stride,
		Data:   v.data.Data[v.rowStart*v.data.Stride+v.colStart:],
	}
}

// SetBlocks re-partitions the whole underlying matrix with the same
// sizes on rows and columns and resets the active range to everything.
// Legal only on owners (ErrNotOwner). A reference whose active range no
// longer lands on block boundaries afterwards panics on its next block
// access.
func (v *View) SetBlocks(sizes []int) error {
	if !v.owner {
		return ErrNotOwner
	}
	rp, err := NewPartition(sizes, v.data.Rows)
	if err != nil {
		return err
	}
	cp, err := NewPartition(sizes, v.data.Cols)
	if err != nil {
		return err
	}

	// Mutate the shared partitions in place so references observe a
	// consistent array, then reset the active range.
	*v.rows = *rp
	*v.cols = *cp
	v.rowStart, v.colStart = 0, 0
	v.rowLen, v.colLen = v.data.Rows, v.data.Cols
	v.rev = false

	return nil
}

// WithRowBlocks replaces the row partition of the active sub-range only,
// splicing p into the full partition array shared by every view of this
// buffer, so the new structure is visible through the owner and all
// sibling references. Fails with ErrDimensionMismatch when p does not
// total the active range's rows.
func (v *View) WithRowBlocks(p *Partition) error {
	if p == nil {
		return ErrInvalidPartition
	}
	if p.Total() != v.rowLen {
		return fmt.Errorf("replacement rows total %d, active range has %d: %w",
			p.Total(), v.rowLen, ErrDimensionMismatch)
	}

	sub := p
	if v.rev {
		rs := p.Sizes()
		for a, b := 0, len(rs)-1; a < b; a, b = a+1, b-1 {
			rs[a], rs[b] = rs[b], rs[a]
		}
		sub, _ = NewPartition(rs, p.Total())
	}
	off, cnt := v.rowRange()
	*v.rows = *v.rows.splice(off, cnt, sub)

	return nil
}

// WithColBlocks replaces the column partition of the active sub-range
// only.
func (v *View) WithColBlocks(p *Partition) error {
	if p == nil {
		return ErrInvalidPartition
	}
	if p.Total() != v.colLen {
		return fmt.Errorf("replacement cols total %d, active range has %d: %w",
			p.Total(), v.colLen, ErrDimensionMismatch)
	}

	sub := p
	if v.rev {
		cs := p.Sizes()
		for a, b := 0, len(cs)-1; a < b; a, b = a+1, b-1 {
			cs[a], cs[b] = cs[b], cs[a]
		}
		sub, _ = NewPartition(cs, p.Total())
	}
	off, cnt := v.colRange()
	*v.cols = *v.cols.splice(off, cnt, sub)

	return nil
}

// WithBlocks replaces both row and column partitions of the active
// sub-range with p.
func (v *View) WithBlocks(p *Partition) error {
	if err := v.WithRowBlocks(p); err != nil {
		return err
	}

	return v.WithColBlocks(p)
}

// Clone returns a deep copy when v is an owner (the result owns a fresh
// buffer holding the active range) and a shallow aliasing copy when v is
// a reference — matching owner/reference copy semantics.
func (v *View) Clone() *View {
	if !v.owner {
		r := *v

		return &r
	}

	data := zmat.Clone(v.Matrix())
	rp, _ := NewPartition(v.activeRowSizesStorage(), data.Rows)
	cp, _ := NewPartition(v.activeColSizesStorage(), data.Cols)

	return &View{
		data:   data,
		rows:   rp,
		cols:   cp,
		rowLen: data.Rows,
		colLen: data.Cols,
		owner:  true,
		rev:    v.rev,
	}
}

// activeRowSizesStorage returns the active row sizes in storage order
// (ignoring reversal).
func (v *View) activeRowSizesStorage() []int {
	off, cnt := v.rowRange()

	return append([]int(nil), v.rows.sizes[off:off+cnt]...)
}

func (v *View) activeColSizesStorage() []int {
	off, cnt := v.colRange()

	return append([]int(nil), v.cols.sizes[off:off+cnt]...)
}

// Assign copies src's active range into v's active range through the
// alias, block by block in view order. The two views must agree on their
// active block structure; otherwise ErrPartitionMismatch.
func (v *View) Assign(src *View) error {
	vr, vc := v.BlockRows(), v.BlockCols()
	sr, sc := src.BlockRows(), src.BlockCols()
	if vr != sr || vc != sc {
		return fmt.Errorf("block counts (%d,%d) vs (%d,%d): %w", vr, vc, sr, sc, ErrPartitionMismatch)
	}
	for i := 0; i < vr; i++ {
		a, _ := v.BlockRowSize(i)
		b, _ := src.BlockRowSize(i)
		if a != b {
			return fmt.Errorf("block row %d size %d vs %d: %w", i, a, b, ErrPartitionMismatch)
		}
	}
	for j := 0; j < vc; j++ {
		a, _ := v.BlockColSize(j)
		b, _ := src.BlockColSize(j)
		if a != b {
			return fmt.Errorf("block col %d size %d vs %d: %w", j, a, b, ErrPartitionMismatch)
		}
	}

	for i := 0; i < vr; i++ {
		for j := 0; j < vc; j++ {
			dst, _ := v.Block(i, j)
			s, _ := src.Block(i, j)
			for r := 0; r < dst.Rows; r++ {
				copy(dst.Data[r*dst.Stride:r*dst.Stride+dst.Cols], s.Data[r*s.Stride:r*s.Stride+s.Cols])
			}
		}
	}

	return nil
}
