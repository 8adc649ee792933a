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

	"github.com/uqlab-project/uqlab/calib"
	"github.com/uqlab-project/uqlab/data"
	"github.com/uqlab-project/uqlab/dataset"
	uq "github.com/uqlab-project/uqlab/internal"
)

var (
	calibData  string
	calibInit  []float64
	calibTotal float64
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit the catalysis rate parameters to a measurement table",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := calibData
		if path == "" {
			path = cfg.Data
		}
		if path == "" {
			return errors.Wrap(uq.InvalidParameter, "no measurement table; set --data or the data config key")
		}

		table, err := dataset.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Info("measurements loaded",
			zap.String("path", path),
			zap.Strings("species", table.Species),
			zap.Int("rows", len(table.Times)))

		// all initial mass sits in the first species of the chain
		z0 := data.NewConstantVector(len(calib.Species()), 0)
		z0[0] = calibTotal

		p, err := calib.NewProblem(table, z0, cfg.Step)
		if err != nil {
			return err
		}

		if len(calibInit) != calib.NumRates {
			return errors.Wrapf(uq.InvalidParameter, "expected %d initial rates", calib.NumRates)
		}
		x0 := data.NewVector(calibInit)

		opts := calib.DefaultOptions()
		opts.MaxIter = cfg.MaxIter
		opts.GradTol = cfg.GradTol

		fitted, err := calib.Calibrate(p, x0, opts)
		if err != nil {
			// report how far the descent got before surfacing the error
			if loss, lerr := p.Loss(fitted); lerr == nil {
				logger.Warn("calibration did not converge", zap.Float64("loss", loss))
			}
			return err
		}

		loss, err := p.Loss(fitted)
		if err != nil {
			return err
		}
		fmt.Printf("fitted rates %v\n", fitted)
		fmt.Printf("loss %.6g\n", loss)
		return nil
	},
}

func init() {
	calibrateCmd.Flags().StringVar(&calibData, "data", "", "Path to the measurement table (overrides the config)")
	calibrateCmd.Flags().Float64SliceVar(&calibInit, "init", []float64{1, 1, 1, 1, 1}, "Initial rate parameters")
	calibrateCmd.Flags().Float64Var(&calibTotal, "initial-mass", 500, "Initial concentration of the first species")
}
