// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultStates(t *testing.T) {
	a := assert.New(t)

	ok := OK(42)
	a.True(ok.IsSuccess())
	a.False(ok.IsFailure())
	v, found := ok.Get()
	a.True(found)
	a.Equal(42, v)
	a.NoError(ok.Error())

	boom := errors.New("BOOM")
	failed := Err[int](boom)
	a.True(failed.IsFailure())
	a.ErrorIs(failed.Error(), boom)
	_, found = failed.Get()
	a.False(found)

	raw := Raw(7)
	a.True(raw.IsRaw())
	a.False(raw.IsSuccess())
	v, found = raw.Get()
	a.True(found)
	a.Equal(7, v)

	unset := Unset[int]()
	a.True(unset.IsUnset())
	_, found = unset.Get()
	a.False(found)

	// The zero Result is the unset sentinel.
	var zero Result[int]
	a.True(zero.IsUnset())
}

func TestResultString(t *testing.T) {
	a := assert.New(t)

	a.Equal("ok(1)", OK(1).String())
	a.Equal("raw(1)", Raw(1).String())
	a.Equal("err(BOOM)", Err[int](errors.New("BOOM")).String())
	a.Equal("unset", Unset[int]().String())
}

func TestIsNil(t *testing.T) {
	a := assert.New(t)

	a.True(isNil(nil))
	a.True(isNil((*int)(nil)))
	a.True(isNil(([]int)(nil)))
	a.True(isNil((map[string]int)(nil)))
	a.False(isNil(0))
	a.False(isNil(""))
	a.False(isNil([]int{}))
}
