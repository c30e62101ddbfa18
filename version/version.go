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

// Package version records the moving version number of the project.
package version

// The name to use when referring to the application.
const ApplicationName = "Gopherboy"

// if number is empty then the project was not built using the makefile
var number string

// Version returns the version string. The string "unreleased" means the
// project was built outside of the release process.
func Version() string {
	if number == "" {
		return "unreleased"
	}
	return number
}
