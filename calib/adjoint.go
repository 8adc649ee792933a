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
	"github.com/uqlab-project/uqlab/data"
)

// Gradient returns the gradient of the loss with respect to the rate
// parameters, together with the loss itself, computed by the adjoint
// method. The adjoint state satisfies
//
//	dlambda/dt = -A^T lambda
//
// integrated backward from lambda(T) = 0, picking up the jump
// 2*(z(t_i) - y_i) at every observation time; the j-th gradient
// component is the time integral of lambda^T (dA/dk_j) z.
func (p *Problem) Gradient(rates data.Vector) (data.Vector, float64, error) {
	tr, err := p.solve(rates)
	if err != nil {
		return nil, 0, err
	}

	obsAt, res, err := p.residuals(tr)
	if err != nil {
		return nil, 0, err
	}
	loss := 0.0
	jumps := map[int]data.Vector{}
	for i, r := range res {
		loss += r.Norm() * r.Norm()

		full := make(data.Vector, len(p.z0))
		for j, s := range p.obsIdx {
			full[s] += 2 * r[j]
		}
		if prev, ok := jumps[obsAt[i]]; ok {
			full = full.Add(prev)
		}
		jumps[obsAt[i]] = full
	}

	model, _ := NewKinetics(rates)
	aT := model.Matrix().Transpose()

	derivs := make([]data.Matrix, NumRates)
	for j := 0; j < NumRates; j++ {
		derivs[j], _ = RateDerivative(j)
	}

	// Backward sweep. Integrating dlambda/dt = -A^T lambda backward
	// in time is a forward Runge-Kutta step for the matrix A^T. The
	// gradient integral is accumulated with the trapezoid rule on the
	// same grid.
	n := len(tr.Times) - 1
	h := tr.Step()
	lambda := data.NewConstantVector(len(p.z0), 0)
	grad := make(data.Vector, NumRates)

	accumulate := func(node int, weight float64) {
		z := tr.States[node]
		for j := 0; j < NumRates; j++ {
			bz, _ := derivs[j].MulVec(z)
			d, _ := lambda.Dot(bz)
			grad[j] += weight * d
		}
	}

	// The adjoint jumps at observation times, so each interval is
	// integrated with the one-sided values at its endpoints: the jump
	// at a node is picked up before the node serves as the right end
	// of an interval and after it has served as the left end.
	for node := n; node > 0; node-- {
		if jump, ok := jumps[node]; ok {
			lambda = lambda.Add(jump)
		}
		accumulate(node, h/2)

		lambda = rk4Step(aT, lambda, h)
		accumulate(node-1, h/2)
	}

	return grad, loss, nil
}
