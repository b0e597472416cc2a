// Package testutil provides shared helpers for the front-end's package
// tests: building an in-memory package fixture and asserting on the
// structured error reports raised by discover/resolve/merge/typecheck.
// Grounded on the teacher's testutil/golden.go (t.Helper()-first,
// update-friendly assertion style) and internal/parser/testutil.go
// (mustParse/assertHasErrorCode convenience wrappers), adapted from
// AILANG's golden-file/parser-error-code helpers to this front-end's
// vfs.Mock fixtures and *errors.Report codes.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/vfs"
)

// Files builds an in-memory package rooted at "/" from a map of relative
// path (without the leading "/") to source text. This is the fixture
// shape every discover/resolve/merge/typecheck/front test in this module
// reaches for instead of writing real files to disk.
func Files(t *testing.T, files map[string]string) vfs.FileSystem {
	t.Helper()
	m := vfs.NewMock()
	for path, src := range files {
		m.WriteFile(path, []byte(src))
	}
	return m
}

// RequireReportCode fails the test unless err wraps an *errors.Report with
// the given code, mirroring the teacher's assertHasErrorCode for this
// front-end's structured error type.
func RequireReportCode(t *testing.T, err error, code string) *ingerrors.Report {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with code %s, got nil", code)
	}
	rep, ok := ingerrors.AsReport(err)
	if !ok {
		t.Fatalf("expected a *errors.Report, got %T: %v", err, err)
	}
	if rep.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, rep.Code, rep.Message)
	}
	return rep
}

// DiffStrings returns a human-readable diff between want and got, or ""
// if they're equal — a thin cmp.Diff wrapper so callers don't each import
// go-cmp themselves (teacher: internal/parser/testutil.go goldenCompare's
// use of cmp.Diff for mismatch reporting).
func DiffStrings(want, got string) string {
	return cmp.Diff(want, got)
}
