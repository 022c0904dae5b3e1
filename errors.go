/*
 * errors.go, part of c3d-book
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

package c3d

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows adding and retrieving information from the error as
//it is passed up the calling stack, without changing its type or wrapping it
//around something else. Each Decorate call appends the caller's name (plus any
//relevant extra, in the format "FunctionName: extra info") and returns the
//resulting decoration slice. If passed an empty string, it just returns the
//current value without adding anything.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type for the c3d root package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver and tries to alter
	//the receiver, it works, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate decorates err with the caller's name if err implements Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
