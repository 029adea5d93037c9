package wsdlerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ParseError{
		Source:  "wsdl",
		Message: "document is not well-formed XML",
		Cause:   cause,
	}

	assert.Contains(t, err.Error(), "parse error in wsdl")
	assert.Contains(t, err.Error(), "not well-formed")
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrResolution))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestResolutionErrorKinds(t *testing.T) {
	tests := []struct {
		name        string
		kind        ResolutionKind
		matches     error
		notMatches  []error
		wantMessage string
	}{
		{
			name:        "unknown type",
			kind:        ResolutionUnknownType,
			matches:     ErrUnknownType,
			notMatches:  []error{ErrInvalidCardinality, ErrCyclicWithoutAnchor},
			wantMessage: "unknown type",
		},
		{
			name:        "invalid cardinality",
			kind:        ResolutionInvalidCardinality,
			matches:     ErrInvalidCardinality,
			notMatches:  []error{ErrUnknownType, ErrCyclicWithoutAnchor},
			wantMessage: "invalid cardinality",
		},
		{
			name:        "cyclic without anchor",
			kind:        ResolutionCyclicWithoutAnchor,
			matches:     ErrCyclicWithoutAnchor,
			notMatches:  []error{ErrUnknownType, ErrInvalidCardinality},
			wantMessage: "cyclic reference without named anchor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ResolutionError{Kind: tt.kind, Name: "DoesNotExist"}

			assert.True(t, errors.Is(err, ErrResolution))
			assert.True(t, errors.Is(err, tt.matches))
			for _, nm := range tt.notMatches {
				assert.False(t, errors.Is(err, nm))
			}
			assert.Contains(t, err.Error(), tt.wantMessage)
			assert.Contains(t, err.Error(), "DoesNotExist")
		})
	}
}

func TestResolutionErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("resolving types: %w", &ResolutionError{
		Kind: ResolutionUnknownType,
		Name: "ns:Missing",
	})

	var resErr *ResolutionError
	require.True(t, errors.As(wrapped, &resErr))
	assert.Equal(t, ResolutionUnknownType, resErr.Kind)
	assert.Equal(t, "ns:Missing", resErr.Name)
}

func TestProjectionError(t *testing.T) {
	err := &ProjectionError{
		Ref:       "GetUserResponse",
		Operation: "GetUser",
	}

	assert.True(t, errors.Is(err, ErrProjection))
	assert.False(t, errors.Is(err, ErrResolution))
	assert.Contains(t, err.Error(), "dangling schema reference")
	assert.Contains(t, err.Error(), "GetUserResponse")
	assert.Contains(t, err.Error(), "operation GetUser")
	assert.Nil(t, err.Unwrap())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Option:  "WithWSDLBytes",
		Message: "must specify exactly one input source",
	}

	assert.True(t, errors.Is(err, ErrConfig))
	assert.Contains(t, err.Error(), "configuration error for WithWSDLBytes")
	assert.Contains(t, err.Error(), "exactly one input source")
}

func TestResolutionKindString(t *testing.T) {
	assert.Equal(t, "unknown type", ResolutionUnknownType.String())
	assert.Equal(t, "invalid cardinality", ResolutionInvalidCardinality.String())
	assert.Equal(t, "cyclic reference without named anchor", ResolutionCyclicWithoutAnchor.String())
	assert.Equal(t, "unknown", ResolutionKind(99).String())
}
