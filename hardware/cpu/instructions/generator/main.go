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

// Command generator creates the table.go file in the instructions package from
// the instructions.csv file.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const definitionsCSVFile = "generator/instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// Code generated by generator. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// Definitions is the table of instruction definitions for the HuC6280, indexed\n" +
	"// by opcode. Undefined opcodes are nil.\n" +
	"var Definitions = [256]*Definition{\n"

const trailingBoilerPlate = "}\n"

// addressing modes and the number of bytes the instruction requires
var modes = map[string]struct {
	name  string
	bytes int
}{
	"IMPLIED":                       {"Implied", 1},
	"ACCUMULATOR":                   {"Accumulator", 1},
	"IMMEDIATE":                     {"Immediate", 2},
	"RELATIVE":                      {"Relative", 2},
	"ZERO_PAGE":                     {"ZeroPage", 2},
	"ZERO_PAGE_INDEXED_X":           {"ZeroPageIndexedX", 2},
	"ZERO_PAGE_INDEXED_Y":           {"ZeroPageIndexedY", 2},
	"ZERO_PAGE_INDIRECT":            {"ZeroPageIndirect", 2},
	"INDEXED_INDIRECT":              {"IndexedIndirect", 2},
	"INDIRECT_INDEXED":              {"IndirectIndexed", 2},
	"ABSOLUTE":                      {"Absolute", 3},
	"ABSOLUTE_INDEXED_X":            {"AbsoluteIndexedX", 3},
	"ABSOLUTE_INDEXED_Y":            {"AbsoluteIndexedY", 3},
	"ABSOLUTE_INDIRECT":             {"AbsoluteIndirect", 3},
	"ABSOLUTE_INDEXED_INDIRECT":     {"AbsoluteIndexedIndirect", 3},
	"ZERO_PAGE_RELATIVE":            {"ZeroPageRelative", 3},
	"BLOCK_TRANSFER":                {"BlockTransfer", 7},
	"IMMEDIATE_ZERO_PAGE":           {"ImmediateZeroPage", 3},
	"IMMEDIATE_ZERO_PAGE_INDEXED_X": {"ImmediateZeroPageIndexedX", 3},
	"IMMEDIATE_ABSOLUTE":            {"ImmediateAbsolute", 4},
	"IMMEDIATE_ABSOLUTE_INDEXED_X":  {"ImmediateAbsoluteIndexedX", 4},
}

var effects = map[string]string{
	"READ":       "Read",
	"WRITE":      "Write",
	"RMW":        "RMW",
	"FLOW":       "Flow",
	"SUBROUTINE": "Subroutine",
	"INTERRUPT":  "Interrupt",
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 5

	deftable := make(map[uint8]string)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		opcode := uint8(n)

		if _, ok := deftable[opcode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", opcode, line)
		}

		cycles, err := strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", opcode, rec[2], line)
		}

		mode, ok := modes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", opcode, rec[3], line)
		}

		effect, ok := effects[strings.ToUpper(rec[4])]
		if !ok {
			return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", opcode, rec[4], line)
		}

		deftable[opcode] = fmt.Sprintf("%#02x: {OpCode: %#02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, Effect: %s},",
			opcode, opcode, rec[1], mode.bytes, cycles, mode.name, effect)
	}

	keys := make([]int, 0, len(deftable))
	for k := range deftable {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(deftable[uint8(k)])
		s.WriteString("\n")
	}

	fmt.Printf("%d opcodes defined, %d undefined\n", len(deftable), 256-len(deftable))

	return s.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formatted, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formatted, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
