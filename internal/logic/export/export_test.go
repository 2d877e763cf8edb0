package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	name := FileName(TypeFlagged)
	assert.True(t, strings.HasPrefix(name, "flagged-"), name)
	assert.True(t, strings.HasSuffix(name, ".csv"), name)
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
}

func TestWriteCSV_UnknownType(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(context.Background(), "secrets", &buf)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExportTypeInvalid))
	assert.Zero(t, buf.Len())
}
