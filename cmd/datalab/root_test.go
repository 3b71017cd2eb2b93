package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shenika-D/ShadowFox-Internship/internal/config"
	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"airquality", "carprice", "all"} {
		assert.Contains(t, out, name)
	}
}

func TestMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "airquality", "--out-dir", dir, "-i", filepath.Join(dir, "absent.csv"))
	assert.Equal(t, apperrors.CodeIOError, apperrors.Code(err))

	_, err = execute(t, "carprice", "--out-dir", dir, "-i", filepath.Join(dir, "absent.csv"))
	assert.Equal(t, apperrors.CodeIOError, apperrors.Code(err))
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("DATALAB_CHART_FORMAT", "gif")
	_, err := execute(t, "carprice", "--out-dir", t.TempDir())
	assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.Code(err))
}

func TestOutPath(t *testing.T) {
	a := &app{cfg: config.Default()}
	a.cfg.OutDir = "charts"
	assert.Equal(t, filepath.Join("charts", "x.xlsx"), a.outPath("x.xlsx"))
	assert.Equal(t, "/abs/x.xlsx", a.outPath("/abs/x.xlsx"))
}
