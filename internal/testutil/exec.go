package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output   []byte
	Err      error
	ExitCode int
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "spack arch", "spack module find").
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// InteractiveCalls records commands executed through Interactive, in order.
	InteractiveCalls []string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{
		Output: []byte(output),
		Err:    err,
	}
}

// RegisterExit adds a response that fails with the given exit code.
// Interactive returns the code directly; Run returns err.
func (c *FakeCommander) RegisterExit(key string, output string, code int, err error) {
	c.Responses[key] = Response{
		Output:   []byte(output),
		Err:      err,
		ExitCode: code,
	}
}

// Run looks up the command in Responses and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	fullCmd := joinCmd(name, args)
	c.Calls = append(c.Calls, fullCmd)

	resp, ok := c.lookup(fullCmd)
	if !ok {
		return nil, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
	}
	return resp.Output, resp.Err
}

// Interactive records the call and returns the registered exit code.
func (c *FakeCommander) Interactive(_ context.Context, name string, args ...string) (int, error) {
	fullCmd := joinCmd(name, args)
	c.InteractiveCalls = append(c.InteractiveCalls, fullCmd)

	resp, ok := c.lookup(fullCmd)
	if !ok {
		return -1, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
	}
	return resp.ExitCode, nil
}

func (c *FakeCommander) lookup(fullCmd string) (Response, bool) {
	// Exact match first.
	if resp, ok := c.Responses[fullCmd]; ok {
		return resp, true
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return c.Responses[bestKey], true
	}

	if c.DefaultResponse != nil {
		return *c.DefaultResponse, true
	}
	return Response{}, false
}

func joinCmd(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
