package sequencer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `No team found for "Foo"`, (&Error{Kind: KindNotFound, Query: "Foo"}).Error())
	assert.Equal(t, "HTTP 404", (&Error{Kind: KindNetwork, Err: errors.New("HTTP 404")}).Error())
	assert.Equal(t, MsgLoadFailure, (&Error{Kind: KindNetwork}).Error())
	assert.NotEmpty(t, (&Error{Kind: KindEmptyQuery}).Error())
}

func TestErrorMatchesSentinelsAndCause(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindNetwork, Err: cause})

	assert.True(t, errors.Is(err, ErrNetwork))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrEmptyQuery))
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(cause))
}

func TestStageTerminal(t *testing.T) {
	assert.True(t, StageReady.Terminal())
	assert.True(t, StageFailed.Terminal())
	assert.False(t, StageFetchingForm.Terminal())
}
