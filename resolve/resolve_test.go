/*
 * resolve_test.go, part of c3d-book
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

package resolve

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

//a fake CIR: knows ethanol and benzene, replies with two tautomer-style
//lines for phenol, 404s everything else.
func fakeCIR(Te *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ethanol/smiles":
			fmt.Fprintln(w, "CCO")
		case "/benzene/smiles":
			fmt.Fprintln(w, "c1ccccc1")
		case "/phenol/smiles":
			fmt.Fprintln(w, "Oc1ccccc1\nO=C1C=CC=CC1")
		default:
			http.NotFound(w, r)
		}
	}))
}

func testResolver(srv *httptest.Server) *Resolver {
	R := New()
	R.Base = srv.URL
	R.Client = srv.Client()
	R.Pause = time.Millisecond
	return R
}

func TestResolve(Te *testing.T) {
	srv := fakeCIR(Te)
	defer srv.Close()
	R := testResolver(srv)
	smiles, err := R.Resolve("ethanol", SMILES)
	if err != nil {
		Te.Fatal(err)
	}
	if smiles != "CCO" {
		Te.Errorf("ethanol resolved to %q", smiles)
	}
	//multi-line replies keep only the first entry
	smiles, err = R.Resolve("phenol", SMILES)
	if err != nil {
		Te.Fatal(err)
	}
	if smiles != "Oc1ccccc1" {
		Te.Errorf("phenol resolved to %q", smiles)
	}
	if _, err = R.Resolve("unobtainium", SMILES); err == nil {
		Te.Error("an unknown compound should be an error")
	}
	if _, err = R.Resolve("", SMILES); err == nil {
		Te.Error("an empty name should be an error")
	}
}

func TestResolveAll(Te *testing.T) {
	srv := fakeCIR(Te)
	defer srv.Close()
	R := testResolver(srv)
	out := R.ResolveAll([]string{"ethanol", "unobtainium", "benzene"}, SMILES)
	if len(out) != 3 {
		Te.Fatalf("got %d results", len(out))
	}
	if out[0].Value != "CCO" || out[0].Err != nil {
		Te.Errorf("ethanol: %v %v", out[0].Value, out[0].Err)
	}
	if out[1].Err == nil {
		Te.Error("the unknown compound should fail without stopping the batch")
	}
	if out[2].Value != "c1ccccc1" || out[2].Err != nil {
		Te.Errorf("benzene: %v %v", out[2].Value, out[2].Err)
	}
	rerr, ok := out[1].Err.(Error)
	if !ok {
		Te.Fatalf("wrong error type %T", out[1].Err)
	}
	if rerr.Name() != "unobtainium" {
		Te.Errorf("the error should carry the compound name, got %q", rerr.Name())
	}
}

//TestPause checks that consecutive requests are spaced by at least the
//configured pause.
func TestPause(Te *testing.T) {
	srv := fakeCIR(Te)
	defer srv.Close()
	R := testResolver(srv)
	R.Pause = 50 * time.Millisecond
	start := time.Now()
	if _, err := R.Resolve("ethanol", SMILES); err != nil {
		Te.Fatal(err)
	}
	if _, err := R.Resolve("benzene", SMILES); err != nil {
		Te.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < R.Pause {
		Te.Errorf("two requests took only %v, pause is %v", elapsed, R.Pause)
	}
}
