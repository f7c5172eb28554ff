// This file is part of GopherIntcode.
//
// GopherIntcode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherIntcode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherIntcode.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/logger"
)

// sentinal error used to end the run loop when the duration has elapsed.
var timedOut = errors.New("performance timed out")

// the timer channel is only checked every brake instructions. checking the
// channel is expensive compared to executing an instruction
const brake = 1000

// Results of a call to Check().
type Results struct {
	Runs         int
	Instructions int
	Duration     time.Duration
}

// InstructionsPerSecond returns the average number of instructions executed
// every second.
func (r Results) InstructionsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

func (r Results) String() string {
	return fmt.Sprintf("%.0f instructions/sec (%d instructions in %d runs over %.2f seconds)",
		r.InstructionsPerSecond(), r.Instructions, r.Runs, r.Duration.Seconds())
}

// Check the performance of the interpreter with the program loaded into the
// machine. The program is run to completion, reset and run again until the
// duration has elapsed. The outcome of each run is not important, the
// program is run even if it faults.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) (Results, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Results{}, fmt.Errorf("performance: %w", err)
	}

	m.SetLogging(logger.Deny)

	var res Results

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		n := 0
		check := func(_ execution.Result) (bool, error) {
			res.Instructions++
			n++
			if n >= brake {
				n = 0
				select {
				case <-timer.C:
					return false, timedOut
				default:
				}
			}
			return true, nil
		}

		start := time.Now()
		defer func() {
			res.Duration = time.Since(start)
		}()

		for {
			m.Reset()
			_, err := m.RunWithCheck(check)
			if errors.Is(err, timedOut) {
				return err
			}

			// the check function isn't called for the final instruction
			res.Instructions++
			res.Runs++

			select {
			case <-timer.C:
				return timedOut
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, fmt.Errorf("performance: %w", err)
	}

	fmt.Fprintln(output, res.String())

	return res, nil
}
