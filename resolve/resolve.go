/*
 * resolve.go, part of c3d-book
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

//Package resolve looks up chemical structures by compound name against a
//CIR-style resolver service (one GET per name, plain-text reply). It is
//a convenience for building the course data sets, not part of the
//numeric pipeline, and it deliberately goes slowly: public resolvers
//ban clients that hammer them.
package resolve

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//DefaultBase is the NCI/CADD Chemical Identifier Resolver.
const DefaultBase = "https://cactus.nci.nih.gov/chemical/structure"

//Representations the course uses.
const (
	SMILES   = "smiles"
	InChI    = "stdinchi"
	InChIKey = "stdinchikey"
	IUPAC    = "iupac_name"
)

//Resolver resolves compound names against one service, pausing between
//consecutive requests.
type Resolver struct {
	Base   string
	Client *http.Client
	Pause  time.Duration //wait between consecutive requests
	last   time.Time
}

//New returns a resolver against the default service with a 10 s request
//timeout and a 1 s pause between requests. Change the fields before the
//first request if you need something else.
func New() *Resolver {
	return &Resolver{
		Base:   DefaultBase,
		Client: &http.Client{Timeout: 10 * time.Second},
		Pause:  time.Second,
	}
}

//Resolve looks up one compound name and returns the requested
//representation (SMILES, InChI...) as a trimmed string. Every request
//after the first waits out the resolver's pause first, no matter how the
//previous one ended.
func (R *Resolver) Resolve(name, repr string) (string, error) {
	if name == "" {
		return "", Error{"", "empty compound name", []string{"Resolve"}}
	}
	R.wait()
	u := fmt.Sprintf("%s/%s/%s", R.Base, url.PathEscape(name), repr)
	resp, err := R.Client.Get(u)
	if err != nil {
		return "", Error{name, fmt.Sprintf("request failed: %v", err), []string{"Resolve"}}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", Error{name, fmt.Sprintf("reading reply: %v", err), []string{"Resolve"}}
	}
	if resp.StatusCode == http.StatusNotFound {
		return "", Error{name, "not found by the resolver", []string{"Resolve"}}
	}
	if resp.StatusCode != http.StatusOK {
		return "", Error{name, fmt.Sprintf("resolver replied %s", resp.Status), []string{"Resolve"}}
	}
	//multi-line replies (tautomers, mostly) keep only the first entry,
	//which is what the course does with them.
	value := strings.TrimSpace(string(body))
	if i := strings.IndexByte(value, '\n'); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	if value == "" {
		return "", Error{name, "empty reply from the resolver", []string{"Resolve"}}
	}
	return value, nil
}

//wait sleeps whatever remains of the pause since the previous request.
func (R *Resolver) wait() {
	if R.last.IsZero() {
		R.last = time.Now()
		return
	}
	elapsed := time.Since(R.last)
	if elapsed < R.Pause {
		time.Sleep(R.Pause - elapsed)
	}
	R.last = time.Now()
}

//Resolved is the outcome for one name in a batch.
type Resolved struct {
	Name  string
	Value string
	Err   error //non-nil if this name failed
}

//ResolveAll maps Resolve over the names. A failure for one name is
//recorded in its entry and does not stop the batch.
func (R *Resolver) ResolveAll(names []string, repr string) []Resolved {
	out := make([]Resolved, len(names))
	for i, name := range names {
		out[i].Name = name
		v, err := R.Resolve(name, repr)
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].Value = v
	}
	return out
}

//Errors

//Error is the concrete error type for this package; it implements the
//c3d Error interface.
type Error struct {
	name    string
	message string
	deco    []string
}

func (err Error) Error() string {
	if err.name == "" {
		return fmt.Sprintf("resolve error: %s", err.message)
	}
	return fmt.Sprintf("resolve %q error: %s", err.name, err.message)
}

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Name returns the compound name the error refers to, if any.
func (err Error) Name() string { return err.name }
