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

// Package calib fits the rate parameters of a reaction-kinetics model
// to measured concentrations. The model is the linear catalysis
// system dz/dt = A(x) z; the least-squares loss against a measurement
// table is minimized by gradient descent, with the gradient computed
// by the adjoint method: an auxiliary system is integrated backward in
// time and paired with the forward trajectory, so the cost of a
// gradient does not grow with the number of rate parameters.
package calib
