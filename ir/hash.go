package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"strconv"
	"strings"
)

// StructureHash encodes the shape of the tree below n as a sequence of
// "depth:kind;" entries in document order, where depth starts at 1 for the
// children of n and kind is 0 for null, 1 for scalars and 2 for lists.
func StructureHash(n *Node) string {
	sb := &strings.Builder{}
	structureHash(n, sb, 1)
	return sb.String()
}

func structureHash(n *Node, sb *strings.Builder, depth int) {
	for _, c := range n.Children {
		sb.WriteString(strconv.Itoa(depth))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(c.Value.Type.Kind()))
		sb.WriteByte(';')
		structureHash(c, sb, depth+1)
	}
}

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, stable within a process.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	v.writeHash(&h)
	return h.Sum64()
}

func (v Value) writeHash(h *maphash.Hash) {
	h.WriteByte(byte(v.Type))
	var b [8]byte
	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int))
		h.Write(b[:])
	case FloatType:
		f := v.Float
		if f == 0 {
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType, InstantType, DurationType:
		h.WriteString(v.String)
	case ListType:
		for i := range v.List {
			binary.LittleEndian.PutUint64(b[:], v.List[i].Hash())
			h.Write(b[:])
		}
	}
}

// Hash returns a 64-bit hash of the subtree at n covering names, values and
// child order but not line numbers.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(n.Name)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n.Value.Hash())
	h.Write(b[:])
	for _, c := range n.Children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
