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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config carries the settings shared by the demo commands.
type config struct {
	// Seed of the demonstration generators.
	Seed uint64 `yaml:"seed"`
	// Draws is the sample size of the statistical experiments.
	Draws int `yaml:"draws"`
	// Data is the path of the measurement table for calibration.
	Data string `yaml:"data"`
	// Step is the integration grid width of the calibration.
	Step float64 `yaml:"step"`
	// MaxIter bounds the calibration descent.
	MaxIter int `yaml:"max_iter"`
	// GradTol is the calibration stopping tolerance.
	GradTol float64 `yaml:"grad_tol"`
}

func defaultConfig() config {
	return config{
		Seed:    123456,
		Draws:   10000,
		Step:    1e-3,
		MaxIter: 500,
		GradTol: 1e-6,
	}
}

// loadConfig reads the yaml file at path, or returns the defaults
// when path is empty. Missing fields keep their default values.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "cannot read configuration")
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, errors.Wrap(err, "cannot parse configuration")
	}

	return c, nil
}
