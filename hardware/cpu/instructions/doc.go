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

// Package instructions defines the instruction set of the HuC6280. The
// Definitions table is generated from the CSV file in the generator
// directory with "go generate".
//
// The HuC6280 instruction set is a superset of the 65C02 instruction set.
// The additions include block transfers, the bank register instructions (TAM
// and TMA), direct writes to the video chip (ST0, ST1 and ST2) and the
// register swap instructions (SAX, SAY and SXY).
package instructions

//go:generate go run ./generator
