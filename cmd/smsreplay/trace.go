package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/akita/v4/mem/vm"
)

// access is one line of a replay trace: a data-cache access at addr by
// pid, from an instruction at pc. Traces have one access per line, in
// three whitespace-separated integer fields: pid pc addr. Each field is
// parsed with Go's integer-literal prefixes, so a hex value needs a 0x
// prefix; an unprefixed value is read as decimal.
type access struct {
	pid  vm.PID
	pc   uint64
	addr uint64
}

// readTrace parses a whitespace-separated trace, skipping blank lines and
// lines starting with '#'.
func readTrace(r io.Reader) ([]access, error) {
	var accesses []access

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf(
				"trace line %d: expected 3 fields, got %d", lineNum, len(fields))
		}

		pid, err := strconv.ParseUint(fields[0], 0, 32)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: bad pid: %w", lineNum, err)
		}

		pc, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: bad pc: %w", lineNum, err)
		}

		addr, err := strconv.ParseUint(fields[2], 0, 64)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: bad addr: %w", lineNum, err)
		}

		accesses = append(accesses, access{pid: vm.PID(pid), pc: pc, addr: addr})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return accesses, nil
}
