// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package: it takes a formatting pattern and
// placeholder values, and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. For example:
//
//	e := curated.Errorf("error: value = %d", 10)
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than just at the head of the chain.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it differentiates 'expected' errors from 'unexpected'
// errors that have emerged from some other package.
//
// The Error() function implementation for curated errors normalises the error
// chain, removing duplicate adjacent parts. The practical advantage is that
// it alleviates the problem of when and how to wrap errors: wrapping at every
// call site does not produce stuttering messages.
//
// Packages that originate curated errors export the patterns they use. The
// cartridge package, for instance, exports the patterns that make up the
// load-time error taxonomy.
package curated
