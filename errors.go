// seehuhn.de/go/sketch - a pixel-level vector renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Causes wrapped by InvalidArgumentError.
var (
	ErrNonFinite   = errors.New("not a finite number")
	ErrNonPositive = errors.New("not positive")
	ErrOutOfRange  = errors.New("out of range")
)

// InvalidShapeError is returned when a primitive or a set of curve controls
// has the wrong number of points for its type.
type InvalidShapeError struct {
	Op   string // the operation which rejected the input
	Kind string // "primitive" or the curve kind
	Got  int    // number of points supplied
	Want string // human readable requirement, e.g. "exactly 4"
}

func (err *InvalidShapeError) Error() string {
	return fmt.Sprintf("%s: invalid %s: got %d points, want %s",
		err.Op, err.Kind, err.Got, err.Want)
}

// InvalidArgumentError is returned when a numeric argument is unusable,
// for example a non-finite coordinate or a non-positive segment count.
type InvalidArgumentError struct {
	Op  string // the operation which rejected the input
	Arg string // name of the offending argument
	Err error  // one of ErrNonFinite, ErrNonPositive, ErrOutOfRange
}

func (err *InvalidArgumentError) Error() string {
	return err.Op + ": invalid " + err.Arg + ": " + err.Err.Error()
}

func (err *InvalidArgumentError) Unwrap() error {
	return err.Err
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func isFiniteVec(v vec.Vec2) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// checkPoints reports the first non-finite point in ps.
func checkPoints(op, arg string, ps []vec.Vec2) error {
	for i, p := range ps {
		if !isFiniteVec(p) {
			return &InvalidArgumentError{
				Op:  op,
				Arg: fmt.Sprintf("%s[%d]", arg, i),
				Err: ErrNonFinite,
			}
		}
	}
	return nil
}

func checkVec(op, arg string, v vec.Vec2) error {
	if !isFiniteVec(v) {
		return &InvalidArgumentError{Op: op, Arg: arg, Err: ErrNonFinite}
	}
	return nil
}
