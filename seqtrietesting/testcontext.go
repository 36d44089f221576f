package seqtrietesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestConfig struct {
	// Seed fixes the RNG so generated sequences are the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

type TestContext struct {
	Log logger.Logger
	Rng *rand.Rand
	T   *testing.T
	Cfg TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		Cfg: cfg,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
