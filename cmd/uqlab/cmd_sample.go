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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/prng"
	"github.com/uqlab-project/uqlab/sample"
)

var (
	sampleTheta float64
	sampleRate  float64
	sampleProbs []float64
)

// demoSource seeds the congruential generator of the lectures from
// the configured seed.
func demoSource() (prng.Source, error) {
	return prng.NewCongruential(lcgMultiplier, lcgIncrement, lcgModulus, cfg.Seed%lcgModulus)
}

var sampleCmd = &cobra.Command{
	Use:   "sample [bernoulli|discrete|exponential]",
	Short: "Run an empirical-mean experiment for a distribution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := demoSource()
		if err != nil {
			return err
		}
		n := cfg.Draws
		logger.Debug("sampling", zap.String("distribution", args[0]), zap.Int("draws", n))

		switch args[0] {
		case "bernoulli":
			s, err := sample.NewBernoulli(src, sampleTheta)
			if err != nil {
				return err
			}
			sum := 0
			for i := 0; i < n; i++ {
				x, err := s.Sample()
				if err != nil {
					return err
				}
				sum += x
			}
			fmt.Printf("draws %d  empirical mean %.5f  theta %.5f\n",
				n, float64(sum)/float64(n), sampleTheta)

		case "discrete":
			s, err := sample.NewCategorical(src, sampleProbs)
			if err != nil {
				return err
			}
			counts := make([]int, s.K())
			for i := 0; i < n; i++ {
				j, err := s.Sample()
				if err != nil {
					return err
				}
				counts[j]++
			}
			for j, c := range counts {
				fmt.Printf("index %d  frequency %.5f  probability %.5f\n",
					j, float64(c)/float64(n), sampleProbs[j])
			}

		case "exponential":
			s, err := sample.NewExponential(src, sampleRate)
			if err != nil {
				return err
			}
			sum := 0.0
			for i := 0; i < n; i++ {
				x, err := s.Sample()
				if err != nil {
					return err
				}
				sum += x
			}
			fmt.Printf("draws %d  empirical mean %.5f  1/rate %.5f\n",
				n, sum/float64(n), 1/sampleRate)

		default:
			return errors.Wrapf(uq.InvalidParameter, "unknown distribution %q", args[0])
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().Float64Var(&sampleTheta, "theta", 0.3, "Success probability of the Bernoulli experiment")
	sampleCmd.Flags().Float64Var(&sampleRate, "rate", 2, "Rate of the exponential experiment")
	sampleCmd.Flags().Float64SliceVar(&sampleProbs, "probs", []float64{0.2, 0.5, 0.3}, "Probabilities of the discrete experiment")
}
