package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kevin-chtw/tw_mjrule/utils"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestLogger(t *testing.T) {
	conf := utils.DefaultLogConfig()
	conf.Dir = t.TempDir()
	conf.Name = "scoring"
	conf.Level = "debug"

	l, err := utils.Logger(conf)
	require.NoError(t, err)
	l.Infof("score %d", 8)

	files, err := filepath.Glob(filepath.Join(conf.Dir, "scoring-*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	line := string(data)
	require.True(t, strings.Contains(line, "[info]"), line)
	require.True(t, strings.HasSuffix(line, "score 8\n"), line)
}

func TestLoggerBadLevel(t *testing.T) {
	conf := utils.DefaultLogConfig()
	conf.Dir = t.TempDir()
	conf.Level = "loud"
	_, err := utils.Logger(conf)
	require.Error(t, err)
}

func TestAny(t *testing.T) {
	msg, err := structpb.NewStruct(map[string]any{"wind": "east"})
	require.NoError(t, err)
	require.Equal(t, "type.googleapis.com/google.protobuf.Struct", utils.TypeUrl(msg))

	data, err := utils.ToAny(msg)
	require.NoError(t, err)
	back, err := utils.FromAny(data)
	require.NoError(t, err)
	require.True(t, proto.Equal(msg, back))
}
