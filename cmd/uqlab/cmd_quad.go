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

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/uqlab-project/uqlab/data"
	"github.com/uqlab-project/uqlab/quad"
)

var quadDim int

var quadCmd = &cobra.Command{
	Use:   "quad",
	Short: "Compare quadrature rules on a smooth integrand",
	RunE: func(cmd *cobra.Command, args []string) error {
		exact := math.E - 1/math.E // integral of exp on [-1, 1]

		fmt.Println("rule             nodes  abs error")
		for level := 1; level <= 5; level++ {
			n := 1<<uint(level) + 1

			tz, err := quad.Trapezoid(n-1, -1, 1)
			if err != nil {
				return err
			}
			cc, err := quad.ClenshawCurtis(level)
			if err != nil {
				return err
			}
			gl, err := quad.GaussLegendre(n)
			if err != nil {
				return err
			}

			fmt.Printf("trapezoid       %6d  %.3e\n", n, math.Abs(tz.Integrate(math.Exp)-exact))
			fmt.Printf("clenshaw-curtis %6d  %.3e\n", n, math.Abs(cc.Integrate(math.Exp)-exact))
			fmt.Printf("gauss-legendre  %6d  %.3e\n", n, math.Abs(gl.Integrate(math.Exp)-exact))
		}

		// sparse versus tensor growth in higher dimension
		smooth := func(p data.Vector) float64 {
			s := 0.0
			for _, x := range p {
				s += x
			}
			return math.Exp(s)
		}
		exactD := math.Pow(exact, float64(quadDim))

		fmt.Printf("\ndimension %d\n", quadDim)
		fmt.Println("grid     level  nodes  abs error")
		for level := 1; level <= 4; level++ {
			sg, err := quad.Smolyak(quadDim, level)
			if err != nil {
				return err
			}
			fmt.Printf("smolyak  %5d  %5d  %.3e\n",
				level, sg.Points.Rows(), math.Abs(sg.Integrate(smooth)-exactD))

			cc, err := quad.ClenshawCurtis(level)
			if err != nil {
				return err
			}
			rules := make([]quad.Rule, quadDim)
			for i := range rules {
				rules[i] = cc
			}
			tg, err := quad.Tensor(rules...)
			if err != nil {
				return err
			}
			fmt.Printf("tensor   %5d  %5d  %.3e\n",
				level, tg.Points.Rows(), math.Abs(tg.Integrate(smooth)-exactD))
		}
		return nil
	},
}

func init() {
	quadCmd.Flags().IntVar(&quadDim, "dim", 3, "Dimension of the sparse-grid comparison")
}
