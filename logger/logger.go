// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central logging facility for the project. Hardware
// emulation never writes to an output stream of its own accord; it logs
// through this package and whatever frontend exists decides what to do with
// the accumulated entries.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// maximum number of entries kept by the central logger. once reached, the
// oldest entries are dropped.
const maxCentral = 256

// Entry is a single line in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// consecutive identical entries are merged and counted rather than
	// appended
	Repeated int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

type logger struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var central = &logger{}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// newlines would break the one-entry-per-line assumption
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.Tag == tag && e.Detail == detail {
			e.Repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    detail,
	})

	if len(l.entries) > maxCentral {
		l.entries = l.entries[len(l.entries)-maxCentral:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}

// SetEcho instructs the central logger to echo new entries to output as they
// arrive. A nil writer turns echoing off.
func SetEcho(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}

// Write the accumulated entries of the central logger to output. Returns
// false if there was nothing to write.
func Write(output io.Writer) bool {
	central.crit.Lock()
	defer central.crit.Unlock()

	if len(central.entries) == 0 {
		return false
	}
	for _, e := range central.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// Tail writes the most recent entries to output, at most number of them.
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	if number > len(central.entries) {
		number = len(central.entries)
	}
	for _, e := range central.entries[len(central.entries)-number:] {
		io.WriteString(output, e.String())
	}
}
