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

package quad

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
)

// Smolyak builds the sparse grid of the given level in d dimensions on
// [-1, 1]^d by the Smolyak combination of nested Clenshaw-Curtis
// rules: the tensor products of all per-dimension levels summing to at
// most level are combined with alternating-sign coefficients, and
// coincident nodes of the nested rules are merged. The node count
// grows polynomially in d, unlike full tensor grids.
func Smolyak(d, level int) (Grid, error) {
	if d < 1 {
		return Grid{}, errors.Wrap(uq.InvalidParameter, "dimension must be positive")
	}
	if level < 0 {
		return Grid{}, errors.Wrap(uq.InvalidParameter, "level must be non-negative")
	}

	// Per-dimension rules are cached; index k holds level k.
	rules := make([]Rule, level+1)
	for k := 0; k <= level; k++ {
		r, err := ClenshawCurtis(k)
		if err != nil {
			return Grid{}, err
		}
		rules[k] = r
	}

	acc := map[string]float64{}
	pts := map[string]data.Vector{}

	q := level + d
	lo := level + 1
	if lo < d {
		lo = d
	}
	for s := lo; s <= q; s++ {
		coef := float64(binom(d-1, q-s))
		if (q-s)%2 == 1 {
			coef = -coef
		}

		for _, comp := range compositions(s, d) {
			sel := make([]Rule, d)
			for k, lk := range comp {
				sel[k] = rules[lk-1]
			}
			g, err := Tensor(sel...)
			if err != nil {
				return Grid{}, err
			}
			for i, pt := range g.Points {
				key := pointKey(pt)
				acc[key] += coef * g.Weights[i]
				pts[key] = pt
			}
		}
	}

	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]data.Vector, len(keys))
	weights := make(data.Vector, len(keys))
	for i, k := range keys {
		points[i] = pts[k]
		weights[i] = acc[k]
	}

	return Grid{Points: data.Matrix(points), Weights: weights}, nil
}

// compositions lists all vectors of length d with positive integer
// entries summing to s.
func compositions(s, d int) [][]int {
	if d == 1 {
		if s < 1 {
			return nil
		}
		return [][]int{{s}}
	}

	var res [][]int
	for first := 1; first <= s-d+1; first++ {
		for _, rest := range compositions(s-first, d-1) {
			comp := append([]int{first}, rest...)
			res = append(res, comp)
		}
	}

	return res
}

func binom(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}

	return res
}

// pointKey identifies a node by the exact bits of its coordinates. The
// nested rules reproduce shared nodes bitwise, so coincident nodes
// merge without conflating distinct nearby ones.
func pointKey(pt data.Vector) string {
	parts := make([]string, len(pt))
	for i, x := range pt {
		if x == 0 {
			x = 0 // normalize negative zero
		}
		parts[i] = strconv.FormatUint(math.Float64bits(x), 16)
	}

	return strings.Join(parts, "|")
}
