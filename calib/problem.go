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
	"github.com/uqlab-project/uqlab/dataset"
	uq "github.com/uqlab-project/uqlab/internal"
)

// Problem is a least-squares calibration problem: find the rate
// parameters under which the catalysis model started at Z0 best
// reproduces the measured concentrations.
type Problem struct {
	table  *dataset.Table
	z0     data.Vector
	step   float64
	obsIdx []int // state index of each table column
}

// NewProblem binds a measurement table to the catalysis model. Every
// species of the table must be a species of the model; the
// integration grid width is step.
func NewProblem(table *dataset.Table, z0 data.Vector, step float64) (*Problem, error) {
	if len(z0) != len(speciesNames) {
		return nil, errors.Wrapf(uq.InvalidParameter, "initial state needs %d species", len(speciesNames))
	}
	if step <= 0 {
		return nil, errors.Wrap(uq.InvalidParameter, "step must be positive")
	}
	if len(table.Times) == 0 || table.Times[len(table.Times)-1] <= 0 {
		return nil, errors.Wrap(uq.InvalidParameter, "table must reach past time zero")
	}

	obsIdx := make([]int, len(table.Species))
	for j, name := range table.Species {
		idx, err := SpeciesIndex(name)
		if err != nil {
			return nil, err
		}
		obsIdx[j] = idx
	}

	return &Problem{
		table:  table,
		z0:     z0.Copy(),
		step:   step,
		obsIdx: obsIdx,
	}, nil
}

// horizon returns the final observation time.
func (p *Problem) horizon() float64 {
	return p.table.Times[len(p.table.Times)-1]
}

// solve integrates the model with the given rates over the
// observation horizon.
func (p *Problem) solve(rates data.Vector) (*Trajectory, error) {
	model, err := NewKinetics(rates)
	if err != nil {
		return nil, err
	}

	return SolveLinear(model.Matrix(), p.z0, p.horizon(), p.step)
}

// residuals returns, for each observation row, the grid index of the
// observation time and the residual vector over the observed species.
func (p *Problem) residuals(tr *Trajectory) ([]int, []data.Vector, error) {
	idx := make([]int, len(p.table.Times))
	res := make([]data.Vector, len(p.table.Times))
	for i, t := range p.table.Times {
		n, err := tr.index(t)
		if err != nil {
			return nil, nil, err
		}
		idx[i] = n

		r := make(data.Vector, len(p.obsIdx))
		for j, s := range p.obsIdx {
			r[j] = tr.States[n][s] - p.table.Concentrations[i][j]
		}
		res[i] = r
	}

	return idx, res, nil
}

// Loss returns the sum of squared residuals between the model under
// the given rates and the measurements.
func (p *Problem) Loss(rates data.Vector) (float64, error) {
	tr, err := p.solve(rates)
	if err != nil {
		return 0, err
	}

	_, res, err := p.residuals(tr)
	if err != nil {
		return 0, err
	}

	loss := 0.0
	for _, r := range res {
		loss += r.Norm() * r.Norm()
	}

	return loss, nil
}
