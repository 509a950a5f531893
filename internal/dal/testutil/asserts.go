package testutil

import (
	"github.com/stretchr/testify/assert"
)

func AssertErrorIsAndContains(wantErr error, contains string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		if !assert.Error(t, err, i...) {
			return false
		}
		return assert.ErrorIs(t, err, wantErr) && assert.ErrorContains(t, err, contains)
	}
}
