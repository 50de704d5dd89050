package param

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	coreerrors "github.com/davidahmann/paramdump/core/errors"
	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

// Load opens path on fs, decodes it and closes it on every exit path.
func Load(fs afero.Fs, path string, logger *zap.Logger) (schemaparam.Descriptor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	file, err := fs.Open(path)
	if err != nil {
		return schemaparam.Descriptor{}, coreerrors.Wrap(
			errors.Wrapf(err, "failed to open %s", path),
			coreerrors.CategoryIOFailure, coreerrors.CodeOpenFailed,
		)
	}
	defer func() {
		_ = file.Close()
	}()

	descriptor, err := Read(file, logger.With(zap.String("path", path)))
	if err != nil {
		return schemaparam.Descriptor{}, errors.Wrap(err, path)
	}
	return descriptor, nil
}

// Read consumes r fully and decodes it.
func Read(r io.Reader, logger *zap.Logger) (schemaparam.Descriptor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return schemaparam.Descriptor{}, coreerrors.Wrap(
			errors.Wrap(err, "read failed"),
			coreerrors.CategoryIOFailure, coreerrors.CodeReadFailed,
		)
	}
	logger.Debug("param document read", zap.Int("bytes", len(data)))

	descriptor, err := Parse(data)
	if err != nil {
		return schemaparam.Descriptor{}, err
	}
	logger.Debug("param document decoded",
		zap.String("content_id", descriptor.ContentID),
		zap.Int("country_ratings", len(descriptor.AgeLevel.CountryRatings)),
		zap.Int("languages", len(descriptor.LocalizedParameters.Languages)),
		zap.Int("permitted_intents", len(descriptor.GameIntent.PermittedIntents)))
	return descriptor, nil
}

// Parse decodes a JSON text holding exactly one descriptor object.
func Parse(data []byte) (schemaparam.Descriptor, error) {
	// encoding/json would substitute U+FFFD for ill-formed sequences.
	if !utf8.Valid(data) {
		return schemaparam.Descriptor{}, syntaxError(errors.New("invalid UTF-8 in input"))
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return schemaparam.Descriptor{}, syntaxError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return schemaparam.Descriptor{}, syntaxError(errors.New("unexpected data after top-level value"))
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return schemaparam.Descriptor{}, shapeError(&DecodeError{Path: "$", Expected: kindObject, Got: describe(doc)})
	}
	return Decode(root)
}

func syntaxError(cause error) error {
	return coreerrors.Wrap(
		errors.Wrap(cause, "invalid JSON"),
		coreerrors.CategoryInvalidInput, coreerrors.CodeSyntaxInvalid,
	)
}

func shapeError(cause *DecodeError) error {
	return coreerrors.Wrap(cause, coreerrors.CategoryInvalidInput, coreerrors.CodeShapeInvalid)
}
