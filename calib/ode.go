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
	"math"

	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
)

// Trajectory holds the states of an integrated system on a uniform
// time grid: row n of States is the state at Times[n].
type Trajectory struct {
	Times  data.Vector
	States data.Matrix
}

// rk4Step advances z by one step of the classical Runge-Kutta scheme
// for the linear system dz/dt = A z.
func rk4Step(a data.Matrix, z data.Vector, h float64) data.Vector {
	s1, _ := a.MulVec(z)
	s2, _ := a.MulVec(z.Add(s1.MulScalar(h / 2)))
	s3, _ := a.MulVec(z.Add(s2.MulScalar(h / 2)))
	s4, _ := a.MulVec(z.Add(s3.MulScalar(h)))

	inc := s1.Add(s2.MulScalar(2)).Add(s3.MulScalar(2)).Add(s4)
	return z.Add(inc.MulScalar(h / 6))
}

// SolveLinear integrates dz/dt = A z from z0 over [0, tEnd] with the
// classical Runge-Kutta scheme on a uniform grid of width at most
// step. The grid always contains both endpoints.
func SolveLinear(a data.Matrix, z0 data.Vector, tEnd, step float64) (*Trajectory, error) {
	n := len(z0)
	if !a.CheckDims(n, n) {
		return nil, uq.DimensionMismatch
	}
	if tEnd <= 0 || step <= 0 {
		return nil, errors.Wrap(uq.InvalidParameter, "horizon and step must be positive")
	}

	m := int(math.Ceil(tEnd / step))
	h := tEnd / float64(m)

	times := make(data.Vector, m+1)
	states := make([]data.Vector, m+1)
	states[0] = z0.Copy()
	for i := 1; i <= m; i++ {
		times[i] = float64(i) * h
		states[i] = rk4Step(a, states[i-1], h)
	}
	times[m] = tEnd

	return &Trajectory{Times: times, States: data.Matrix(states)}, nil
}

// Step returns the width of the trajectory's grid.
func (tr *Trajectory) Step() float64 {
	return tr.Times[len(tr.Times)-1] / float64(len(tr.Times)-1)
}

// index returns the grid node nearest to t.
func (tr *Trajectory) index(t float64) (int, error) {
	last := tr.Times[len(tr.Times)-1]
	if t < 0 || t > last {
		return 0, errors.Wrapf(uq.InvalidParameter, "time %g outside [0, %g]", t, last)
	}

	return int(math.Round(t / tr.Step())), nil
}

// At returns the state at the grid node nearest to t.
func (tr *Trajectory) At(t float64) (data.Vector, error) {
	i, err := tr.index(t)
	if err != nil {
		return nil, err
	}

	return tr.States[i], nil
}
