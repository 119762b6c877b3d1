// This file is part of GopherPCE.
//
// GopherPCE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPCE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPCE.  If not, see <https://www.gnu.org/licenses/>.

package timer_test

import (
	"testing"

	"github.com/gopherpce/gopherpce/hardware/timer"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

func TestPeriod(t *testing.T) {
	tmr := timer.NewTimer(logger.NewLogger(10), logger.Allow)

	tmr.Write(0, 0xff)
	test.ExpectEquality(t, tmr.Read(0), 0x7f)
	test.ExpectEquality(t, tmr.Max(), 1023*0x7f)

	// zero period is the same as a period of one
	tmr.Write(0, 0x00)
	test.ExpectEquality(t, tmr.Max(), 1023)

	tmr.Write(1, 0xff)
	test.ExpectEquality(t, tmr.Read(1), 0x01)
}

func TestDisabled(t *testing.T) {
	tmr := timer.NewTimer(logger.NewLogger(10), logger.Allow)
	test.ExpectFailure(t, tmr.Step(5000))
	test.ExpectEquality(t, tmr.Counter(), 0)
}

func TestFiring(t *testing.T) {
	tmr := timer.NewTimer(logger.NewLogger(10), logger.Allow)
	tmr.Write(0, 2)
	tmr.Write(1, 1)

	// the timer fires when the counter exceeds the maximum
	test.ExpectFailure(t, tmr.Step(2046))
	test.ExpectFailure(t, tmr.Pending())
	test.ExpectSuccess(t, tmr.Step(1))
	test.ExpectSuccess(t, tmr.Pending())
	test.ExpectEquality(t, tmr.Counter(), 1)

	tmr.Acknowledge()
	test.ExpectFailure(t, tmr.Pending())

	// excess cycles are carried
	test.ExpectSuccess(t, tmr.Step(2050))
	test.ExpectEquality(t, tmr.Counter(), 5)
}
