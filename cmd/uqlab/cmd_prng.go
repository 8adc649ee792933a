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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uqlab-project/uqlab/prng"
)

// Lecture constants of the congruential generator demonstration.
const (
	lcgMultiplier = 123456
	lcgIncrement  = 978564
	lcgModulus    = 6012119
)

var prngSteps int

var prngCmd = &cobra.Command{
	Use:   "prng",
	Short: "Compare the middle-square and congruential generators",
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := prng.NewMiddleSquare(4, cfg.Seed%10000)
		if err != nil {
			return err
		}
		lcg, err := prng.NewCongruential(lcgMultiplier, lcgIncrement, lcgModulus, cfg.Seed%lcgModulus)
		if err != nil {
			return err
		}

		fmt.Println("step  middle-square  congruential")
		seen := map[uint64]int{}
		cycleAt := -1
		for i := 0; i < prngSteps; i++ {
			m := ms.Uint64()
			c := lcg.Uint64()
			fmt.Printf("%4d  %13d  %12d\n", i+1, m, c)

			if at, ok := seen[m]; ok && cycleAt < 0 {
				cycleAt = at
				logger.Info("middle-square generator entered a cycle",
					zap.Int("cycle_start", at+1),
					zap.Int("step", i+1))
			}
			seen[m] = i
		}
		return nil
	},
}

func init() {
	prngCmd.Flags().IntVar(&prngSteps, "steps", 30, "Number of values to generate")
}
