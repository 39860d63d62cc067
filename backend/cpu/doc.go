// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure-Go CPU compute backend.
//
// Every tensor operation is implemented in plain Go with no external
// dependencies. The backend favors readability over throughput, which
// suits lesson-scale data.
//
// Wrap it with the autodiff package to record gradients:
//
//	backend := autodiff.New(cpu.New())
package cpu
