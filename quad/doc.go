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

// Package quad constructs quadrature rules for numerical integration.
//
// One-dimensional rules (Gauss-Legendre, Gauss-Hermite, Clenshaw-Curtis
// and the trapezoid rule) are represented as node and weight vectors.
// Multi-dimensional node sets are built either as full tensor products
// or as Smolyak sparse grids, which avoid the exponential growth of
// tensor grids by combining low-order corrections of nested
// Clenshaw-Curtis rules.
package quad
