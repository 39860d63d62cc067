package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestSGDStep(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	param := nn.NewParameter("w", w)

	grad, err := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.Backend]{param}, optim.SGDConfig{LR: 0.1}, backend)
	sgd.Step(map[*tensor.RawTensor]*tensor.RawTensor{w.Raw(): grad.Raw()})

	// w -= lr * grad
	assert.InDelta(t, 0.0, param.Tensor().At(0), 1e-6)
	assert.InDelta(t, 0.0, param.Tensor().At(1), 1e-6)
}

func TestSGDUpdatesInPlace(t *testing.T) {
	backend := cpu.New()

	w := tensor.Ones[float32](tensor.Shape{2}, backend)
	param := nn.NewParameter("w", w)
	raw := param.Tensor().Raw()

	grad := tensor.Ones[float32](tensor.Shape{2}, backend)
	sgd := optim.NewSGD([]*nn.Parameter[*cpu.Backend]{param}, optim.SGDConfig{LR: 0.5}, backend)
	sgd.Step(map[*tensor.RawTensor]*tensor.RawTensor{raw: grad.Raw()})

	// Tensor identity must survive the update so the next forward pass
	// and gradient lookup find the same buffer.
	assert.Same(t, raw, param.Tensor().Raw())
	assert.InDelta(t, 0.5, param.Tensor().At(0), 1e-6)
}

func TestSGDSkipsParamsWithoutGradient(t *testing.T) {
	backend := cpu.New()

	w := tensor.Ones[float32](tensor.Shape{2}, backend)
	param := nn.NewParameter("w", w)

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.Backend]{param}, optim.SGDConfig{LR: 0.5}, backend)
	sgd.Step(map[*tensor.RawTensor]*tensor.RawTensor{})

	assert.Equal(t, []float32{1, 1}, param.Tensor().Data())
}

func TestSGDMomentum(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{0}, tensor.Shape{1}, backend)
	require.NoError(t, err)
	param := nn.NewParameter("w", w)

	grad, err := tensor.FromSlice([]float32{1}, tensor.Shape{1}, backend)
	require.NoError(t, err)
	grads := map[*tensor.RawTensor]*tensor.RawTensor{w.Raw(): grad.Raw()}

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.Backend]{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9}, backend)

	// Step 1: velocity = 1, w = -0.1.
	sgd.Step(grads)
	assert.InDelta(t, -0.1, param.Tensor().At(0), 1e-6)

	// Step 2: velocity = 0.9 + 1 = 1.9, w = -0.1 - 0.19 = -0.29.
	sgd.Step(grads)
	assert.InDelta(t, -0.29, param.Tensor().At(0), 1e-6)
}

func TestSGDDefaultsAndLR(t *testing.T) {
	backend := cpu.New()
	sgd := optim.NewSGD(nil, optim.SGDConfig{}, backend)

	assert.Equal(t, float32(0.01), sgd.GetLR())
	sgd.SetLR(0.2)
	assert.Equal(t, float32(0.2), sgd.GetLR())
}

func TestZeroGradClearsParameters(t *testing.T) {
	backend := cpu.New()

	w := tensor.Ones[float32](tensor.Shape{1}, backend)
	param := nn.NewParameter("w", w)
	param.SetGrad(tensor.Ones[float32](tensor.Shape{1}, backend))

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.Backend]{param}, optim.SGDConfig{LR: 0.1}, backend)
	sgd.ZeroGrad()

	assert.Nil(t, param.Grad())
}
