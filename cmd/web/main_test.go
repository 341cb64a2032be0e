package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roo-petroleum-web/config"
)

func TestRun(t *testing.T) {
	t.Run("Should return start-up failures instead of exiting", func(t *testing.T) {
		cfg := &config.Config{
			Port:                   "0",
			LogLevel:               "error",
			DBUrl:                  "postgres://localhost:badport/roo",
			SecurityServiceName:    "roo-petroleum-web",
			SecurityLogEnvironment: "test",
		}

		err := run(cfg)

		assert.ErrorContains(t, err, "failed to connect to database")
	})
}
