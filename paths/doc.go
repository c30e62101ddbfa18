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

// Package paths contains functions to prepare paths to gopherboy resources,
// such as the battery backed RAM saved for cartridges that have it.
//
// The ResourcePath() function returns the path to the named resource,
// prepended with the appropriate config directory, creating the directory
// if necessary. For example:
//
//	d, err := paths.ResourcePath("saves", cart.ID()+".sav")
//
// For release builds (build tag "release") the base path sits inside the
// user's config directory, as reported by os.UserConfigDir(). Otherwise a
// ".gopherboy" directory in the current working directory is used.
package paths
