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

// Package dataset reads tables of experimental measurements. A table
// is a CSV file whose header names the observed species, whose first
// column holds the observation times and whose remaining columns hold
// the measured concentrations.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
)

// Table holds a set of concentration measurements: one row per
// observation time, one column per observed species.
type Table struct {
	Times          data.Vector
	Species        []string
	Concentrations data.Matrix
}

// Load reads a measurement table from r. The first header field names
// the time column and is otherwise ignored; the remaining fields name
// the species.
func Load(r io.Reader) (*Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse measurement table")
	}
	if len(rows) < 2 {
		return nil, errors.Wrap(uq.InvalidParameter, "table needs a header and at least one row")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, errors.Wrap(uq.InvalidParameter, "table needs a time column and at least one species")
	}
	species := header[1:]

	times := make(data.Vector, 0, len(rows)-1)
	conc := make([]data.Vector, 0, len(rows)-1)
	for i, row := range rows[1:] {
		vals := make(data.Vector, len(row))
		for j, field := range row {
			vals[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %d", i+2, j+1)
			}
		}
		times = append(times, vals[0])
		conc = append(conc, vals[1:])
	}

	mat, err := data.NewMatrix(conc)
	if err != nil {
		return nil, err
	}

	return &Table{
		Times:          times,
		Species:        species,
		Concentrations: mat,
	}, nil
}

// LoadFile reads a measurement table from the file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open measurement table")
	}
	defer f.Close()

	return Load(f)
}

// Column returns the measurements of the named species.
func (t *Table) Column(species string) (data.Vector, error) {
	for j, name := range t.Species {
		if name == species {
			return t.Concentrations.GetCol(j)
		}
	}

	return nil, errors.Wrapf(uq.InvalidParameter, "unknown species %q", species)
}
