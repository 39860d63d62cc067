package lesson

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// trainBackend is the recording backend the training lesson runs on.
type trainBackend = *autodiff.Backend[*cpu.Backend]

func init() {
	Register(Lesson{
		Slug:    "01-gradient-descent",
		Title:   "A minimal training loop",
		Summary: "Fit y = w*x + b with MSE loss and plain gradient descent.",
		Run:     runGradientDescent,
	})
}

// FitResult holds what the training loop produced, for inspection and
// testing.
type FitResult struct {
	Losses []float32 // loss per step, in order
	Weight float32   // learned w
	Bias   float32   // learned b
}

// Synthetic data is drawn from this line plus a little Gaussian noise.
const (
	fitTrueWeight = 2.0
	fitTrueBias   = -1.0
	fitSamples    = 32
	fitNoise      = 0.05
)

func runGradientDescent(w io.Writer, opts Options) error {
	fmt.Fprintf(w, "Fitting y = w*x + b to %d noisy points drawn from w=%g, b=%g\n",
		fitSamples, fitTrueWeight, fitTrueBias)
	fmt.Fprintf(w, "steps=%d lr=%g seed=%d\n", opts.Steps, opts.LR, opts.Seed)

	result, err := FitLinear(w, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nlearned: w=%.4f b=%.4f (true values %g, %g)\n",
		result.Weight, result.Bias, float64(fitTrueWeight), float64(fitTrueBias))
	return nil
}

// FitLinear runs the training loop: a fixed number of full-batch
// gradient descent steps at a fixed learning rate. No convergence
// check, no schedule; the loop always runs opts.Steps iterations.
//
// Each step: clear the tape, record forward and loss, backward,
// SGD update, drop the gradients. Progress lines go to w.
func FitLinear(w io.Writer, opts Options) (*FitResult, error) {
	if opts.Steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", opts.Steps)
	}

	backend := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(opts.Seed))

	xs := make([]float32, fitSamples)
	ys := make([]float32, fitSamples)
	for i := range xs {
		x := -1.0 + 2.0*float64(i)/float64(fitSamples-1)
		xs[i] = float32(x)
		ys[i] = float32(fitTrueWeight*x + fitTrueBias + rng.NormFloat64()*fitNoise)
	}

	x, err := tensor.FromSlice(xs, tensor.Shape{fitSamples, 1}, backend)
	if err != nil {
		return nil, err
	}
	y, err := tensor.FromSlice(ys, tensor.Shape{fitSamples, 1}, backend)
	if err != nil {
		return nil, err
	}

	model := nn.NewLinearFrom(1, 1, rng, backend)
	mse := nn.NewMSELoss[trainBackend]()
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: float32(opts.LR)}, backend)
	tape := backend.Tape()

	logEvery := opts.Steps / 10
	if logEvery == 0 {
		logEvery = 1
	}

	losses := make([]float32, 0, opts.Steps)
	for step := 0; step < opts.Steps; step++ {
		tape.Clear()
		tape.StartRecording()
		pred := model.Forward(x)
		loss := mse.Forward(pred, y)
		tape.StopRecording()

		grads := autodiff.Backward(loss)
		sgd.Step(grads.Map())
		sgd.ZeroGrad()

		lv := loss.Item()
		losses = append(losses, lv)
		if step%logEvery == 0 || step == opts.Steps-1 {
			fmt.Fprintf(w, "step %4d  loss %.6f\n", step, lv)
		}
	}

	return &FitResult{
		Losses: losses,
		Weight: model.Weight().Tensor().At(0, 0),
		Bias:   model.Bias().Tensor().At(0),
	}, nil
}
