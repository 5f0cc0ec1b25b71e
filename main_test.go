package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_SkipsServerStart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	isTest = true
	defer func() { isTest = false }()

	started := 0
	startServer = func() { started++ }
	defer func() { startServer = start }()

	main()
	run()

	assert.Equal(t, 2, started)
}

func TestBuildEngine_MountsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := buildEngine()

	var paths []string
	for _, route := range r.Routes() {
		paths = append(paths, route.Method+" "+route.Path)
	}
	assert.Contains(t, paths, "POST /auth/signin")
	assert.Contains(t, paths, "GET /dashboard/doctor")
	assert.Contains(t, paths, "POST /appointments")
	assert.Contains(t, paths, "GET /records/:recordId/file")
	assert.Contains(t, paths, "POST /call/start")
}
