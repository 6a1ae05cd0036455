// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/fault"
)

var (
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrInvariantOne = fault.InvariantError("invariant one")
	ErrInvariantTwo = fault.InvariantError("invariant two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProcessTwo   = fault.ProcessError("process two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		invalid   bool
		invariant bool
		notFound  bool
		process   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrInvariantOne, false, false, true, false, false},
		{ErrInvariantTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},

		{fault.ErrDuplicateKey, true, false, false, false, false},
		{fault.ErrKeyNotFound, false, false, false, true, false},
		{fault.ErrEmptyTree, false, false, false, true, false},
		{fault.ErrBufferTooSmall, false, true, false, false, false},
		{fault.ErrBlackHeightMismatch, false, false, true, false, false},
		{fault.ErrExpectationFailed, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrInvariant(err) != e.invariant {
			t.Errorf("%d: expected 'invariant' == %v for err = %v", i, e.invariant, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestInitialiseTwice(t *testing.T) {
	const dir = "testing"
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)
	defer os.RemoveAll(dir)

	err := logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "fault.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	assert.Nil(t, err, "logger initialise")
	defer logger.Finalise()

	assert.Nil(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")

	fault.Criticalf("test message: %d", 42)
	fault.PanicIfError("no error", nil)

	assert.Panics(t, func() {
		fault.PanicIfError("forced", fault.ErrKeyNotFound)
	}, "non-nil error must panic")

	fault.Finalise()
	assert.Nil(t, fault.Initialise(), "initialise after finalise")
	fault.Finalise()
}
