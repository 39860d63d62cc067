// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the sprout
// lessons.
//
// # Overview
//
// Tensors are the data structure every lesson works on. This package
// provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Device abstraction (CPU today)
//
// # Basic Usage
//
//	import (
//	    "github.com/sprout-ml/sprout/backend/cpu"
//	    "github.com/sprout-ml/sprout/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    z := x.Add(y)
//	    result := x.MatMul(y.Transpose())
//	}
//
// # Supported Data Types
//
// The DType constraint covers:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - bool (boolean masks)
//
// # Broadcasting
//
// Elementwise operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend) // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)  // (3, 4)
//	c := a.Add(b)                                           // (3, 4)
//
// See method documentation for the full operation list.
package tensor
