// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrBlackHeightMismatch  = InvariantError("black height differs between paths")
	ErrBufferTooSmall       = InvalidError("buffer too small")
	ErrCountMismatch        = InvariantError("node count does not match tree count")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrExpectationFailed    = ProcessError("expectation failed")
	ErrHeightMismatch       = InvariantError("cached height is incorrect")
	ErrInvalidExpectation   = InvalidError("invalid expectation")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidOffset        = InvalidError("invalid offset")
	ErrInvalidOperation     = InvalidError("invalid operation")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidVariant       = InvalidError("invalid variant")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNoConfigurationTable = InvalidError("configuration did not return a table")
	ErrOrderViolation       = InvariantError("keys are not in ascending order")
	ErrParentMismatch       = InvariantError("parent link is inconsistent")
	ErrRedChildOfRed        = InvariantError("red node has a red child")
	ErrRedRoot              = InvariantError("root is red")
	ErrSentinelModified     = InvariantError("sentinel has been modified")
	ErrUnbalanced           = InvariantError("balance factor out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
