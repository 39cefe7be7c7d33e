//go:build tools
// +build tools

// Package tools pins code-generation tool versions in go.mod so that
// 'go generate ./...' produces the same output for every developer.
package tools

import (
	_ "github.com/dmarkham/enumer"
	_ "go.uber.org/mock/mockgen"
)
