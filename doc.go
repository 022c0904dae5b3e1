/*
 * doc.go, part of c3d-book
 *
 * Copyright 2024 Sam Chong <drsamchong{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package c3d provides the molecule and atom structures, atomic data and
//structure-file reading shared by the chemistry-data course packages
//(spectrum, peakfit, tabular, descriptor, qspr, resolve and chemplot).
//The layout follows the same idea as goChem: a small flat root package
//with the chemical types everything else needs, plus one subpackage per
//topic of the course.
package c3d
