package puzzle

import (
	"fmt"

	"github.com/corey/adco/internal/domain/parsec"
)

const maskWidth = 36

// DockingInstruction is either a SetMask or a SetMemory.
type DockingInstruction interface {
	dockingInstruction()
}

// SetMask replaces the bitmask. Ones and Zeros have a bit set wherever the
// mask says '1' or '0'; Wilds holds one single-bit value per 'X', lowest
// first.
type SetMask struct {
	Ones, Zeros uint64
	Wilds       []uint64
}

// SetMemory writes Value to Addr through the current mask.
type SetMemory struct {
	Addr, Value uint64
}

func (SetMask) dockingInstruction()   {}
func (SetMemory) dockingInstruction() {}

var (
	setMask = parsec.FlatMap(
		parsec.IgnoreThen(parsec.String("mask = "), parsec.Many1(parsec.OneOfString("X01"))),
		func(cs []rune) parsec.Parser[DockingInstruction] {
			if len(cs) != maskWidth {
				return parsec.Failure[DockingInstruction](
					fmt.Sprintf("Mask of invalid size %d: expected %d", len(cs), maskWidth))
			}
			var m SetMask
			bit := uint64(1)
			for i := len(cs) - 1; i >= 0; i-- {
				switch cs[i] {
				case '1':
					m.Ones |= bit
				case '0':
					m.Zeros |= bit
				case 'X':
					m.Wilds = append(m.Wilds, bit)
				}
				bit <<= 1
			}
			return parsec.Lift[DockingInstruction](m)
		},
	)

	setMemory = parsec.Map(
		parsec.Series4(parsec.String("mem["), parsec.Long(), parsec.String("] = "), parsec.Long()),
		func(v parsec.Tuple4[string, int64, string, int64]) DockingInstruction {
			return SetMemory{Addr: uint64(v.V2), Value: uint64(v.V4)}
		},
	)

	initProgram = parsec.SepBy(parsec.Choice(setMask, setMemory), parsec.Newline(), true)
)

// Day14 is "Docking Data".
func Day14() Problem {
	return &twoPart[[]DockingInstruction, uint64, uint64]{
		day:    14,
		title:  "Day 14: Docking Data",
		parser: initProgram,
		partA: func(prog []DockingInstruction) (uint64, error) {
			return memorySum(runDocking(prog, maskValues)), nil
		},
		partB: func(prog []DockingInstruction) (uint64, error) {
			return memorySum(runDocking(prog, maskAddresses)), nil
		},
	}
}

type memWriter func(mem map[uint64]uint64, mask SetMask, w SetMemory)

// maskValues overwrites the value's bits with the mask's 0s and 1s.
func maskValues(mem map[uint64]uint64, mask SetMask, w SetMemory) {
	mem[w.Addr] = (w.Value | mask.Ones) &^ mask.Zeros
}

// maskAddresses sets the mask's 1s in the address and writes every
// address the floating X bits can form.
func maskAddresses(mem map[uint64]uint64, mask SetMask, w SetMemory) {
	addrs := []uint64{w.Addr | mask.Ones}
	for _, x := range mask.Wilds {
		next := make([]uint64, 0, 2*len(addrs))
		for _, a := range addrs {
			next = append(next, a|x, a&^x)
		}
		addrs = next
	}
	for _, a := range addrs {
		mem[a] = w.Value
	}
}

func runDocking(prog []DockingInstruction, write memWriter) map[uint64]uint64 {
	mem := make(map[uint64]uint64)
	var mask SetMask
	for _, in := range prog {
		switch in := in.(type) {
		case SetMask:
			mask = in
		case SetMemory:
			write(mem, mask, in)
		}
	}
	return mem
}

func memorySum(mem map[uint64]uint64) uint64 {
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum
}
