package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	defer Init("info", "text")

	Init("debug", "text")
	assert.Equal(t, log.DebugLevel, L().GetLevel())

	Init("not-a-level", "json")
	assert.Equal(t, log.InfoLevel, L().GetLevel())
	_, ok := L().Formatter.(*log.JSONFormatter)
	assert.True(t, ok)
}

func TestWithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	base := log.New()
	base.SetOutput(&buf)
	base.SetFormatter(&log.JSONFormatter{})

	l := With(base, Fields{"session": "abc"})
	l.Info("hello")
	assert.Contains(t, buf.String(), `"session":"abc"`)

	buf.Reset()
	nested := With(l, Fields{"peer": "p1"})
	nested.Info("again")
	assert.Contains(t, buf.String(), `"session":"abc"`)
	assert.Contains(t, buf.String(), `"peer":"p1"`)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	require.NotNil(t, l)
	l.Infof("dropped %d", 1)
}
