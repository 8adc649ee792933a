/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package calib

import (
	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
)

// Options control the gradient-descent calibration.
type Options struct {
	// MaxIter bounds the number of descent iterations.
	MaxIter int
	// GradTol stops the descent once the gradient norm falls below it.
	GradTol float64
	// Step is the initial step of the backtracking line search.
	Step float64
}

// DefaultOptions returns the options used by the lecture demos.
func DefaultOptions() Options {
	return Options{
		MaxIter: 500,
		GradTol: 1e-6,
		Step:    1e-3,
	}
}

const maxBacktracks = 50

// Calibrate minimizes the least-squares loss of the problem by
// gradient descent with a backtracking line search, starting from the
// rates x0. It returns the best rates found; if the gradient norm does
// not reach opts.GradTol within opts.MaxIter iterations, the rates are
// returned together with a convergence-failure error. There is no
// automatic retry.
func Calibrate(p *Problem, x0 data.Vector, opts Options) (data.Vector, error) {
	if opts.MaxIter < 1 || opts.GradTol <= 0 || opts.Step <= 0 {
		return nil, errors.Wrap(uq.InvalidParameter, "options must be positive")
	}

	x := x0.Copy()
	for i := 0; i < opts.MaxIter; i++ {
		grad, loss, err := p.Gradient(x)
		if err != nil {
			return nil, err
		}
		if grad.Norm() <= opts.GradTol {
			return x, nil
		}

		alpha := opts.Step
		improved := false
		for b := 0; b < maxBacktracks; b++ {
			cand := clampRates(x.Sub(grad.MulScalar(alpha)))
			candLoss, err := p.Loss(cand)
			if err != nil {
				return nil, err
			}
			if candLoss < loss {
				x = cand
				improved = true
				break
			}
			alpha /= 2
		}
		if !improved {
			return x, errors.Wrap(uq.ConvergenceFailure, "line search stalled")
		}
	}

	return x, errors.Wrapf(uq.ConvergenceFailure, "gradient norm above %g after %d iterations",
		opts.GradTol, opts.MaxIter)
}

// clampRates projects a candidate onto the feasible set of
// non-negative rates.
func clampRates(x data.Vector) data.Vector {
	c := x.Copy()
	for i, v := range c {
		if v < 0 {
			c[i] = 0
		}
	}

	return c
}
