package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// NegOp records element-wise negation: output = -x.
type NegOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewNegOp creates a new NegOp.
func NewNegOp(x, output *tensor.RawTensor) *NegOp {
	return &NegOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward negates the gradient.
func (op *NegOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Neg(outputGrad)}
}

// Inputs returns [x].
func (op *NegOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns -x.
func (op *NegOp) Output() *tensor.RawTensor { return op.output }

// ExpOp records the exponential: output = e^x.
type ExpOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewExpOp creates a new ExpOp.
func NewExpOp(x, output *tensor.RawTensor) *ExpOp {
	return &ExpOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward uses d(e^x)/dx = e^x, which is the recorded output.
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.output)}
}

// Inputs returns [x].
func (op *ExpOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns e^x.
func (op *ExpOp) Output() *tensor.RawTensor { return op.output }

// LogOp records the natural logarithm: output = ln(x).
type LogOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewLogOp creates a new LogOp.
func NewLogOp(x, output *tensor.RawTensor) *LogOp {
	return &LogOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward computes grad / x.
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, op.inputs[0])}
}

// Inputs returns [x].
func (op *LogOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns ln(x).
func (op *LogOp) Output() *tensor.RawTensor { return op.output }

// SqrtOp records the square root: output = √x.
type SqrtOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(x, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward computes grad * 0.5 / √x using the recorded output.
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	half := backend.MulScalar(outputGrad, 0.5)
	return []*tensor.RawTensor{backend.Div(half, op.output)}
}

// Inputs returns [x].
func (op *SqrtOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns √x.
func (op *SqrtOp) Output() *tensor.RawTensor { return op.output }

// PowOp records raising to a constant power: output = x^p.
type PowOp struct {
	exponent float64
	inputs   []*tensor.RawTensor // [x]
	output   *tensor.RawTensor
}

// NewPowOp creates a new PowOp.
func NewPowOp(x *tensor.RawTensor, exponent float64, output *tensor.RawTensor) *PowOp {
	return &PowOp{exponent: exponent, inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward computes grad * p * x^(p-1).
func (op *PowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := backend.Mul(outputGrad, backend.Pow(x, op.exponent-1))
	return []*tensor.RawTensor{backend.MulScalar(grad, op.exponent)}
}

// Inputs returns [x].
func (op *PowOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns x^p.
func (op *PowOp) Output() *tensor.RawTensor { return op.output }

// ReLUOp records output = max(0, x).
type ReLUOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(x, output *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward passes the gradient through where x > 0 and blocks it
// elsewhere. The gradient at exactly zero is zero.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	zeros := zerosLike(x, backend)
	mask := backend.Greater(x, zeros)
	return []*tensor.RawTensor{backend.Where(mask, outputGrad, zeros)}
}

// Inputs returns [x].
func (op *ReLUOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns max(0, x).
func (op *ReLUOp) Output() *tensor.RawTensor { return op.output }
