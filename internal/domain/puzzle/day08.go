package puzzle

import (
	"errors"
	"fmt"

	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

// Operation is a handheld console opcode.
type Operation string

const (
	Acc Operation = "acc"
	Jmp Operation = "jmp"
	Nop Operation = "nop"
)

// Instruction is one line of boot code.
type Instruction struct {
	Op  Operation
	Arg int
}

// InfiniteLoopError stops a program about to run an instruction twice.
type InfiniteLoopError struct {
	Pos int
	Acc int
}

func (e *InfiniteLoopError) Error() string {
	return fmt.Sprintf("Visited instruction %d more than once, current acc=%d", e.Pos, e.Acc)
}

// OutOfRangeError stops a program that jumped outside its code.
type OutOfRangeError struct {
	Pos int
	Acc int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Instruction %d out of range, current acc=%d", e.Pos, e.Acc)
}

var (
	operation = parsec.Map(parsec.Keyword(string(Acc), string(Jmp), string(Nop)), func(s string) Operation {
		return Operation(s)
	})

	instruction = parsec.Map(
		parsec.Series4(operation, parsec.Char(' '), parsec.Optional(parsec.Char('+')), parsec.Int()),
		func(v parsec.Tuple4[Operation, rune, option.Option[rune], int]) Instruction {
			return Instruction{Op: v.V1, Arg: v.V4}
		},
	)

	bootCode = parsec.SepBy(instruction, parsec.Newline(), true)
)

// Day8 is "Handheld Halting".
func Day8() Problem {
	return &twoPart[[]Instruction, int, int]{
		day:    8,
		title:  "Day 8: Handheld Halting",
		parser: bootCode,
		partA:  accBeforeLoop,
		partB:  repairProgram,
	}
}

// runProgram executes prog until it steps just past its last instruction
// and returns the accumulator.
func runProgram(prog []Instruction) (int, error) {
	visited := make([]bool, len(prog))
	current, acc := 0, 0
	for current != len(prog) {
		if current < 0 || current > len(prog) {
			return 0, &OutOfRangeError{Pos: current, Acc: acc}
		}
		if visited[current] {
			return 0, &InfiniteLoopError{Pos: current, Acc: acc}
		}
		visited[current] = true
		in := prog[current]
		switch in.Op {
		case Acc:
			acc += in.Arg
			current++
		case Nop:
			current++
		case Jmp:
			current += in.Arg
		}
	}
	return acc, nil
}

func accBeforeLoop(prog []Instruction) (int, error) {
	_, err := runProgram(prog)
	var loop *InfiniteLoopError
	switch {
	case err == nil:
		return 0, errorf("Program terminated without looping")
	case errors.As(err, &loop):
		return loop.Acc, nil
	default:
		return 0, err
	}
}

// repairProgram swaps a single jmp/nop so the program terminates.
func repairProgram(prog []Instruction) (int, error) {
	patched := make([]Instruction, len(prog))
	copy(patched, prog)
	for i, in := range prog {
		switch in.Op {
		case Jmp:
			patched[i].Op = Nop
		case Nop:
			patched[i].Op = Jmp
		default:
			continue
		}
		acc, err := runProgram(patched)
		patched[i] = in
		if err == nil {
			return acc, nil
		}
	}
	return 0, errorf("No single substitution found")
}
