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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern and
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	bank := 0x90
//	e := curated.Errorf("memory: unmapped bank %02x", bank)
//
//	if curated.Is(e, "memory: unmapped bank %02x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("cpu: %v", e)
//
//	if curated.Has(f, "memory: unmapped bank %02x") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors, depending on how the caller chooses to handle them.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. A chain is composed of parts separated by the sub-string ": "
// so wrapping an error with the same prefix, like so:
//
//	return curated.Errorf("vdc: %v", curated.Errorf("vdc: dma length"))
//
// results in the message:
//
//	vdc: dma length
//
// and not:
//
//	vdc: vdc: dma length
//
// Curated errors also implement Unwrap() so wrapped errors, curated or not,
// can be inspected with the errors package in the standard library.
package curated
