package siteql_test

import (
	"errors"
	"testing"

	"github.com/mlipski/siteql"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siteql.Errorf(siteql.ENOTFOUND, "record %d not found", 42)

	assert.Equal(t, siteql.ENOTFOUND, siteql.ErrorCode(err))
	assert.Equal(t, "record 42 not found", siteql.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteql.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, siteql.EINTERNAL, siteql.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteql.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", siteql.ErrorMessage(errors.New("boom")))
}
