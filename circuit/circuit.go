package circuit

import "fmt"

// Apply validates the application of gate with params on wires and appends
// it to the tape.
//
// Validation order (fail fast, nothing appended on error):
//  1. gate.Name non-empty            → ErrUnknownGate
//  2. len(wires)  == gate.Arity      → ErrArityMismatch
//  3. len(params) == gate.Params     → ErrParamCount
//
// Both slices are copied, so the tape never aliases caller memory.
// Complexity: O(len(params)+len(wires)) time per call, amortized O(1) appends.
func (c *Circuit) Apply(gate Gate, params []float64, wires []Wire) error {
	if gate.Name == "" {
		return fmt.Errorf("Apply: empty gate name: %w", ErrUnknownGate)
	}
	if len(wires) != gate.Arity {
		return fmt.Errorf("Apply: %s expects %d wire(s), got %d: %w",
			gate.Name, gate.Arity, len(wires), ErrArityMismatch)
	}
	if len(params) != gate.Params {
		return fmt.Errorf("Apply: %s expects %d parameter(s), got %d: %w",
			gate.Name, gate.Params, len(params), ErrParamCount)
	}

	// Defensive copies: the tape must outlive and never mutate caller arrays.
	op := Op{
		Gate:   gate,
		Params: append([]float64(nil), params...),
		Wires:  append([]Wire(nil), wires...),
	}
	c.ops = append(c.ops, op)

	return nil
}

// Ops returns the recorded applications in emission order.
// The returned slice is a snapshot copy; Op.Params/Op.Wires remain shared
// read-only backing arrays and must not be mutated by callers.
// Complexity: O(n) time and space for n recorded ops.
func (c *Circuit) Ops() []Op {
	return append([]Op(nil), c.ops...)
}

// Len reports the number of recorded gate applications. O(1).
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Count reports how many recorded applications use the named gate. O(n).
func (c *Circuit) Count(name string) int {
	var total int
	for i := range c.ops {
		if c.ops[i].Gate.Name == name {
			total++
		}
	}

	return total
}

// At returns the i-th recorded application. Panics if i is out of range,
// mirroring slice semantics; use Len to bound the index.
func (c *Circuit) At(i int) Op {
	return c.ops[i]
}
