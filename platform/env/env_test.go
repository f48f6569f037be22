package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NW_TEST_STRING", "")
	assert.Equal(t, "fallback", OrDefault(log, "NW_TEST_STRING", "fallback"))

	t.Setenv("NW_TEST_STRING", "set")
	assert.Equal(t, "set", OrDefault(log, "NW_TEST_STRING", "fallback"))

	t.Setenv("NW_TEST_INT", "not a number")
	assert.Equal(t, 3, IntDefault(log, "NW_TEST_INT", "3"))

	t.Setenv("NW_TEST_DURATION", "2m")
	assert.Equal(t, 2*time.Minute, DurationDefault(log, "NW_TEST_DURATION", "5s"))

	t.Setenv("NW_TEST_BOOL", "t")
	assert.True(t, BoolDefault(log, "NW_TEST_BOOL", "f"))
}

func TestListDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NW_TEST_LIST", "")
	assert.Equal(t, []string{"Low", "Medium", "High"}, ListDefault(log, "NW_TEST_LIST", "Low,Medium,High"))

	t.Setenv("NW_TEST_LIST", " Urgent , ,Later")
	assert.Equal(t, []string{"Urgent", "Later"}, ListDefault(log, "NW_TEST_LIST", "Low"))
}
