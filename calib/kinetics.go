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

// NumRates is the number of rate parameters of the catalysis model.
const NumRates = 5

// speciesNames is the state ordering of the catalysis model. X is the
// unobservable intermediate.
var speciesNames = []string{"NO3", "NO2", "N2", "N2O", "NH3", "X"}

// Kinetics is the linear catalysis reaction model
//
//	NO3 -> NO2            (rate k1)
//	NO2 -> N2             (rate k2)
//	NO2 -> N2O            (rate k4)
//	NO2 -> X -> NH3       (rates k5, k3)
//
// whose concentrations evolve as dz/dt = A(k) z.
type Kinetics struct {
	rates data.Vector
}

// NewKinetics returns the model with the given rate parameters
// (k1, ..., k5). All rates must be non-negative.
func NewKinetics(rates data.Vector) (*Kinetics, error) {
	if len(rates) != NumRates {
		return nil, errors.Wrapf(uq.InvalidParameter, "expected %d rates", NumRates)
	}
	for _, k := range rates {
		if k < 0 {
			return nil, errors.Wrap(uq.InvalidParameter, "rates must be non-negative")
		}
	}

	return &Kinetics{rates: rates.Copy()}, nil
}

// Species returns the state ordering of the model.
func Species() []string {
	s := make([]string, len(speciesNames))
	copy(s, speciesNames)
	return s
}

// SpeciesIndex returns the state index of the named species.
func SpeciesIndex(name string) (int, error) {
	for i, s := range speciesNames {
		if s == name {
			return i, nil
		}
	}

	return 0, errors.Wrapf(uq.InvalidParameter, "unknown species %q", name)
}

// Rates returns a copy of the model's rate parameters.
func (k *Kinetics) Rates() data.Vector {
	return k.rates.Copy()
}

// Matrix returns the rate matrix A(k).
func (k *Kinetics) Matrix() data.Matrix {
	k1, k2, k3, k4, k5 := k.rates[0], k.rates[1], k.rates[2], k.rates[3], k.rates[4]

	a := data.NewConstantMatrix(len(speciesNames), len(speciesNames), 0)
	a[0][0] = -k1
	a[1][0] = k1
	a[1][1] = -(k2 + k4 + k5)
	a[2][1] = k2
	a[3][1] = k4
	a[4][5] = k3
	a[5][1] = k5
	a[5][5] = -k3

	return a
}

// RateDerivative returns dA/dk_j, the constant sensitivity of the rate
// matrix to the j-th rate parameter.
func RateDerivative(j int) (data.Matrix, error) {
	if j < 0 || j >= NumRates {
		return nil, errors.Wrap(uq.InvalidParameter, "rate index out of range")
	}

	d := data.NewConstantMatrix(len(speciesNames), len(speciesNames), 0)
	switch j {
	case 0: // k1: NO3 -> NO2
		d[0][0] = -1
		d[1][0] = 1
	case 1: // k2: NO2 -> N2
		d[1][1] = -1
		d[2][1] = 1
	case 2: // k3: X -> NH3
		d[4][5] = 1
		d[5][5] = -1
	case 3: // k4: NO2 -> N2O
		d[1][1] = -1
		d[3][1] = 1
	case 4: // k5: NO2 -> X
		d[1][1] = -1
		d[5][1] = 1
	}

	return d, nil
}
