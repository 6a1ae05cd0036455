// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/ordmap/fault"
)

// operation names
const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpGet      = "get"
	OpContains = "contains"
	OpCount    = "count"
	OpClear    = "clear"
	OpCheck    = "check"
)

// expectations that are not literals
const (
	ExpectOk        = "ok"
	ExpectDuplicate = "duplicate"
	ExpectNotFound  = "not-found"
)

// Operation - one step of a script
type Operation struct {
	Op     string `yaml:"op"`
	Key    string `yaml:"key,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Expect string `yaml:"expect,omitempty"`
}

// Script - a sequence of operations with optional defaults for the
// map to run them on
type Script struct {
	Variant    string      `yaml:"variant,omitempty"`
	KeyType    string      `yaml:"key_type,omitempty"`
	Check      bool        `yaml:"check,omitempty"`
	Operations []Operation `yaml:"operations"`
}

// ReadScript - decode and validate a script
func ReadScript(r io.Reader) (*Script, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	script := &Script{}
	if err := decoder.Decode(script); nil != err {
		if io.EOF == err {
			return script, nil
		}
		return nil, err
	}
	if err := script.Validate(); nil != err {
		return nil, err
	}
	return script, nil
}

// LoadScript - read a script from a file
func LoadScript(fileName string) (*Script, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return ReadScript(f)
}

// WriteScript - encode a script as YAML
func (script *Script) WriteScript(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(script); nil != err {
		return err
	}
	return encoder.Close()
}

// Validate - reject unknown operations and expectations that an
// operation cannot produce
func (script *Script) Validate() error {
	for i := range script.Operations {
		if err := script.Operations[i].validate(); nil != err {
			return err
		}
	}
	return nil
}

func (op *Operation) validate() error {
	switch op.Op {
	case OpInsert:
		switch op.Expect {
		case "", ExpectOk, ExpectDuplicate:
			return nil
		}
	case OpRemove, OpGet:
		// any literal is a value
		return nil
	case OpContains:
		if "" == op.Expect {
			return nil
		}
		if _, err := strconv.ParseBool(op.Expect); nil == err {
			return nil
		}
	case OpCount:
		if "" == op.Expect {
			return nil
		}
		if n, err := strconv.Atoi(op.Expect); nil == err && n >= 0 {
			return nil
		}
	case OpClear, OpCheck:
		switch op.Expect {
		case "", ExpectOk:
			return nil
		}
	default:
		return fault.ErrInvalidOperation
	}
	return fault.ErrInvalidExpectation
}

// needsKey - true if the operation acts on a single key
func (op *Operation) needsKey() bool {
	switch op.Op {
	case OpInsert, OpRemove, OpGet, OpContains:
		return true
	}
	return false
}
