package stepgraph

import (
	"github.com/holiman/uint256"
	"github.com/stepfold/chart-expr/model"
)

// PositionKey is a canonical, fixed-width encoding of a model.Position
// used as the Graph's interning map key (the visited bitset is indexed by
// PositionID, not by this key). Spelling it as a uint256.Int rather than a hand-rolled
// struct or string hash leaves generous headroom: a pad many times larger
// than any real layout (each cell packs a 15-bit arrow index plus a state
// bit) still fits in a fraction of the 256 bits available.
type PositionKey = uint256.Int

const (
	cellBits   = 16
	arrowShift = 1 // low bit of a cell is the Held/Resting flag
)

func encodeOccupation(o model.ArrowOccupation) uint64 {
	if o.Vacant() {
		return 0
	}
	v := (uint64(o.Arrow) + 1) << arrowShift
	if o.State == model.Held {
		v |= 1
	}
	return v
}

func decodeOccupation(v uint64) model.ArrowOccupation {
	if v == 0 {
		return model.ArrowOccupation{Arrow: model.NoArrow, State: model.Resting}
	}
	state := model.Resting
	if v&1 != 0 {
		state = model.Held
	}
	arrow := model.Arrow(v>>arrowShift) - 1
	return model.ArrowOccupation{Arrow: arrow, State: state}
}

// KeyOf computes the canonical PositionKey for a Position.
func KeyOf(p model.Position) PositionKey {
	cells := [4]uint64{
		encodeOccupation(p.State[model.Left][0]),
		encodeOccupation(p.State[model.Left][1]),
		encodeOccupation(p.State[model.Right][0]),
		encodeOccupation(p.State[model.Right][1]),
	}

	key := new(uint256.Int)
	shift := new(uint256.Int)
	tmp := new(uint256.Int)
	for i, c := range cells {
		tmp.SetUint64(c)
		shift.Lsh(tmp, uint(i*cellBits))
		key.Or(key, shift)
	}

	orientation := new(uint256.Int).SetUint64(uint64(p.Orientation))
	orientation.Lsh(orientation, uint(len(cells)*cellBits))
	key.Or(key, orientation)

	return *key
}

// PositionOf decodes a PositionKey back into a model.Position. It is the
// exact inverse of KeyOf. The Graph keeps full Positions in its own slice
// and does not call it.
func PositionOf(k PositionKey) model.Position {
	mask := uint64(1)<<cellBits - 1
	get := func(i int) uint64 {
		shift := new(uint256.Int).Rsh(&k, uint(i*cellBits))
		return shift.Uint64() & mask
	}

	var p model.Position
	p.State[model.Left][0] = decodeOccupation(get(0))
	p.State[model.Left][1] = decodeOccupation(get(1))
	p.State[model.Right][0] = decodeOccupation(get(2))
	p.State[model.Right][1] = decodeOccupation(get(3))

	orientShift := new(uint256.Int).Rsh(&k, uint(4*cellBits))
	p.Orientation = model.BodyOrientation(orientShift.Uint64())
	return p
}
