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

package instructions

// Operator defines which operation is performed by an instruction.
type Operator int

// List of valid Operator values. The bit number of the BBR, BBS, RMB and SMB
// instructions is encoded in the opcode and is not part of the operator.
const (
	ADC Operator = iota
	AND
	ASL
	BBR
	BBS
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRA
	BRK
	BSR
	BVC
	BVS
	CLA
	CLC
	CLD
	CLI
	CLV
	CLX
	CLY
	CMP
	CPX
	CPY
	CSH
	CSL
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PHX
	PHY
	PLA
	PLP
	PLX
	PLY
	RMB
	ROL
	ROR
	RTI
	RTS
	SAX
	SAY
	SBC
	SEC
	SED
	SEI
	SET
	SMB
	ST0
	ST1
	ST2
	STA
	STX
	STY
	STZ
	SXY
	TAI
	TAM
	TAX
	TAY
	TDD
	TIA
	TII
	TIN
	TMA
	TRB
	TSB
	TST
	TSX
	TXA
	TXS
	TYA
)

var operatorNames = [...]string{
	"ADC", "AND", "ASL", "BBR", "BBS", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRA", "BRK", "BSR", "BVC", "BVS", "CLA", "CLC", "CLD",
	"CLI", "CLV", "CLX", "CLY", "CMP", "CPX", "CPY", "CSH", "CSL", "DEC",
	"DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX",
	"LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PHX", "PHY", "PLA", "PLP",
	"PLX", "PLY", "RMB", "ROL", "ROR", "RTI", "RTS", "SAX", "SAY", "SBC",
	"SEC", "SED", "SEI", "SET", "SMB", "ST0", "ST1", "ST2", "STA", "STX",
	"STY", "STZ", "SXY", "TAI", "TAM", "TAX", "TAY", "TDD", "TIA", "TII",
	"TIN", "TMA", "TRB", "TSB", "TST", "TSX", "TXA", "TXS", "TYA",
}

func (op Operator) String() string {
	if int(op) < 0 || int(op) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[op]
}
