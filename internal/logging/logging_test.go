package logging_test

import (
	"errors"
	"testing"

	"github.com/loganlanou/academy/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestErr_ReturnsErrorAttr(t *testing.T) {
	err := errors.New("something went wrong")
	attr := logging.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.Equal(t, "something went wrong", attr.Value.String())
}

func TestErr_NilError(t *testing.T) {
	attr := logging.Err(nil)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "<nil>", attr.Value.String())
}
