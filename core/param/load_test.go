package param

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	coreerrors "github.com/davidahmann/paramdump/core/errors"
	"github.com/davidahmann/paramdump/internal/scenarios"
)

func TestLoadFromFilesystem(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "param.json", []byte(scenarios.FullParamJSON), 0o600))

	descriptor, err := Load(fs, "param.json", zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "UP9000-PPSA01284_00-ASTROSPLAYROOM00", descriptor.ContentID)
	assert.Equal(t, 13, descriptor.AgeLevel.DefaultRating)
	assert.Equal(t, "en-US", descriptor.LocalizedParameters.DefaultLanguage)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "param.json", nil)
	require.Error(t, err)
	assert.Equal(t, coreerrors.CategoryIOFailure, coreerrors.CategoryOf(err))
	assert.Equal(t, coreerrors.CodeOpenFailed, coreerrors.CodeOf(err))
	assert.True(t, errors.Is(err, os.ErrNotExist), err.Error())
	assert.Contains(t, err.Error(), "failed to open param.json")
}

func TestLoadPrefixesPathOnDecodeFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "param.json", []byte(`{"addcont":{"serviceIdForSharing":[]},"ageLevel":{"US":7}}`), 0o600))

	_, err := Load(fs, "param.json", nil)
	require.Error(t, err)
	assert.Equal(t, "param.json: ageLevel.default: expected integer, got missing", err.Error())
	assert.Equal(t, coreerrors.CodeShapeInvalid, coreerrors.CodeOf(err))
}

func TestLoadSyntaxFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "param.json", []byte(`{"contentId":}`), 0o600))

	_, err := Load(fs, "param.json", nil)
	require.Error(t, err)
	assert.Equal(t, coreerrors.CodeSyntaxInvalid, coreerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "param.json: invalid JSON: ")
}

// closeTrackingFs records whether the opened file was closed.
type closeTrackingFs struct {
	afero.Fs
	closed bool
}

type closeTrackingFile struct {
	afero.File
	owner *closeTrackingFs
}

func (f *closeTrackingFile) Close() error {
	f.owner.closed = true
	return f.File.Close()
}

func (fs *closeTrackingFs) Open(name string) (afero.File, error) {
	file, err := fs.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &closeTrackingFile{File: file, owner: fs}, nil
}

func TestLoadClosesFileOnDecodeFailure(t *testing.T) {
	fs := &closeTrackingFs{Fs: afero.NewMemMapFs()}
	require.NoError(t, afero.WriteFile(fs.Fs, "param.json", []byte(`[]`), 0o600))

	_, err := Load(fs, "param.json", nil)
	require.Error(t, err)
	assert.True(t, fs.closed, "expected param.json to be closed after a failed decode")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestReadFailure(t *testing.T) {
	_, err := Read(failingReader{}, nil)
	require.Error(t, err)
	assert.Equal(t, coreerrors.CategoryIOFailure, coreerrors.CategoryOf(err))
	assert.Equal(t, coreerrors.CodeReadFailed, coreerrors.CodeOf(err))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestReadLogsDecodeSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "param.json", []byte(scenarios.FullParamJSON), 0o600))
	_, err := Load(fs, "param.json", zap.New(core))
	require.NoError(t, err)

	decoded := logs.FilterMessage("param document decoded").All()
	require.Len(t, decoded, 1)
	fields := decoded[0].ContextMap()
	assert.Equal(t, "param.json", fields["path"])
	assert.Equal(t, int64(3), fields["country_ratings"])
	assert.Equal(t, int64(3), fields["languages"])
	assert.Equal(t, int64(2), fields["permitted_intents"])
	assert.Equal(t, 1, logs.FilterMessage("param document read").Len())
}
