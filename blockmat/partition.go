// Package blockmat: Partition is pure data plus offset arithmetic — an
// ordered sequence of positive block sizes with cached prefix sums.

package blockmat

import "fmt"

// Partition describes how a dense dimension of length Total() is grouped
// into BlockCount() contiguous blocks. Its own methods never mutate it;
// only View re-partitioning replaces a partition's contents.
type Partition struct {
	sizes   []int
	offsets []int // offsets[i] = sum of sizes[:i]
	total   int
}

// NewPartition builds a partition from sizes governing a dimension of
// length dim. It fails with ErrInvalidPartition when sizes is empty, any
// size is non-positive, or the sizes do not sum exactly to dim. Oversized
// partitions are rejected, never clamped.
func NewPartition(sizes []int, dim int) (*Partition, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("empty block sizes: %w", ErrInvalidPartition)
	}

	total := 0
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("block size %d: %w", s, ErrInvalidPartition)
		}
		total += s
	}
	if total != dim {
		return nil, fmt.Errorf("sizes sum to %d, dimension is %d: %w", total, dim, ErrInvalidPartition)
	}

	p := &Partition{
		sizes:   append([]int(nil), sizes...),
		offsets: make([]int, len(sizes)),
		total:   total,
	}
	for i := 1; i < len(p.sizes); i++ {
		p.offsets[i] = p.offsets[i-1] + p.sizes[i-1]
	}

	return p, nil
}

// NewUniform builds a partition of count equal blocks of the given size.
func NewUniform(size, count int) (*Partition, error) {
	if size <= 0 || count <= 0 {
		return nil, fmt.Errorf("uniform %dx%d: %w", count, size, ErrInvalidPartition)
	}
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = size
	}

	return NewPartition(sizes, size*count)
}

// BlockCount returns the number of blocks.
func (p *Partition) BlockCount() int { return len(p.sizes) }

// Total returns the governed dimension, the sum of all block sizes.
func (p *Partition) Total() int { return p.total }

// normalize maps a possibly negative block index into [0,k) or fails
// with ErrIndexOutOfRange.
func (p *Partition) normalize(i int) (int, error) {
	k := len(p.sizes)
	if i < 0 {
		i += k
	}
	if i < 0 || i >= k {
		return 0, fmt.Errorf("index %d of %d blocks: %w", i, k, ErrIndexOutOfRange)
	}

	return i, nil
}

// BlockSize returns the size of block i. Negative i counts from the end.
func (p *Partition) BlockSize(i int) (int, error) {
	i, err := p.normalize(i)
	if err != nil {
		return 0, err
	}

	return p.sizes[i], nil
}

// BlockOffset returns the element offset of block i. Negative i counts
// from the end.
func (p *Partition) BlockOffset(i int) (int, error) {
	i, err := p.normalize(i)
	if err != nil {
		return 0, err
	}

	return p.offsets[i], nil
}

// Offsets returns a copy of the prefix-sum offsets, O(k).
func (p *Partition) Offsets() []int {
	return append([]int(nil), p.offsets...)
}

// Sizes returns a copy of the block sizes, O(k).
func (p *Partition) Sizes() []int {
	return append([]int(nil), p.sizes...)
}

// blockRange maps the element span [start, start+length) to the block
// index range covering it. The view layer keeps every active range on
// block boundaries; a span left misaligned by a foreign re-partition is
// a programmer error and panics.
func (p *Partition) blockRange(start, length int) (off, count int) {
	off = -1
	for i, o := range p.offsets {
		if o == start {
			off = i

			break
		}
	}
	if off < 0 {
		panic("blockmat: active range start is not on a block boundary")
	}

	sum := 0
	for sum < length {
		if off+count >= len(p.sizes) {
			panic("blockmat: active range extends past the partition")
		}
		sum += p.sizes[off+count]
		count++
	}
	if sum != length {
		panic("blockmat: active range end is not on a block boundary")
	}

	return off, count
}

// splice returns a new partition where the count blocks starting at off
// are replaced by sub's blocks. The caller guarantees sub's total matches
// the replaced span.
func (p *Partition) splice(off, count int, sub *Partition) *Partition {
	sizes := make([]int, 0, len(p.sizes)-count+len(sub.sizes))
	sizes = append(sizes, p.sizes[:off]...)
	sizes = append(sizes, sub.sizes...)
	sizes = append(sizes, p.sizes[off+count:]...)

	out, err := NewPartition(sizes, p.total)
	if err != nil {
		// The span totals were checked by the caller; a failure here is a
		// programmer error.
		panic(err)
	}

	return out
}
