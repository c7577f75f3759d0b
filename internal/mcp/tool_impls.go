package mcp

import (
	"fmt"
	"time"

	"github.com/ynivin/waveform-mcp/internal/envelope"
	"github.com/ynivin/waveform-mcp/internal/errors"
	"github.com/ynivin/waveform-mcp/internal/telemetry"
)

// instrument wraps a handler with invocation recording. With telemetry
// disabled this is a passthrough.
func (s *MCPServer) instrument(name string, handler ToolHandler) ToolHandler {
	if s.telemetry == nil {
		return handler
	}
	return func(params map[string]interface{}) (*envelope.Response, error) {
		start := time.Now()
		resp, err := handler(params)
		ok := err == nil && (resp == nil || resp.Error == nil)
		s.telemetry.RecordInvocation(telemetry.Invocation{
			Tool:       name,
			OK:         ok,
			DurationMs: time.Since(start).Milliseconds(),
			CalledAt:   start,
		})
		return resp, err
	}
}

// resolvePath maps a registered alias to its trace path. Unregistered
// names pass through as literal paths.
func (s *MCPServer) resolvePath(aliasOrPath string) string {
	if s.registry == nil {
		return aliasOrPath
	}
	return s.registry.Resolve(aliasOrPath)
}

func stringParam(params map[string]interface{}, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", errors.NewInvalidParameterError(key, "required")
	}
	value, ok := raw.(string)
	if !ok {
		return "", errors.NewInvalidParameterError(key, "expected string")
	}
	return value, nil
}

func optionalStringParam(params map[string]interface{}, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", errors.NewInvalidParameterError(key, "expected string")
	}
	return value, nil
}

// optionalIntParam reads an integer parameter. JSON numbers decode as
// float64, so whole floats are accepted too.
func optionalIntParam(params map[string]interface{}, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, errors.NewInvalidParameterError(key, "expected integer")
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, errors.NewInvalidParameterError(key, "expected integer")
	}
}

// failure renders an engine error as an envelope-level error so the
// JSON-RPC call itself still succeeds.
func (s *MCPServer) failure(file string, err error) *envelope.Response {
	b := envelope.New().Data(nil).Error(err.Error())
	var we *errors.WaveError
	if errors.As(err, &we) {
		switch we.Code {
		case errors.SignalNotFound:
			b.Suggest("getSignalList", "list the signals this waveform actually contains", map[string]interface{}{
				"waveformFile": file,
			})
		case errors.LoadFailure:
			b.Suggest("getWalHelp", "see supported waveform formats and usage", map[string]interface{}{
				"topic": "overview",
			})
		}
	}
	return b.Build()
}

func (s *MCPServer) handleGetSignalList(params map[string]interface{}) (*envelope.Response, error) {
	file, err := stringParam(params, "waveformFile")
	if err != nil {
		return nil, err
	}
	pattern, err := optionalStringParam(params, "pattern")
	if err != nil {
		return nil, err
	}

	res, err := s.engine.SignalList(s.resolvePath(file), pattern)
	if err != nil {
		return s.failure(file, err), nil
	}
	return envelope.Operational(res), nil
}

func (s *MCPServer) handleGetSignalTransitions(params map[string]interface{}) (*envelope.Response, error) {
	file, err := stringParam(params, "waveformFile")
	if err != nil {
		return nil, err
	}
	signal, err := stringParam(params, "signalName")
	if err != nil {
		return nil, err
	}
	startTime, err := optionalIntParam(params, "startTime")
	if err != nil {
		return nil, err
	}
	endTime, err := optionalIntParam(params, "endTime")
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Transitions(s.resolvePath(file), signal, startTime, endTime)
	if err != nil {
		return s.failure(file, err), nil
	}
	return envelope.Operational(res), nil
}

func (s *MCPServer) handleGetWaveformLength(params map[string]interface{}) (*envelope.Response, error) {
	file, err := stringParam(params, "waveformFile")
	if err != nil {
		return nil, err
	}

	res, err := s.engine.WaveformLength(s.resolvePath(file))
	if err != nil {
		return s.failure(file, err), nil
	}
	return envelope.Operational(res), nil
}

func (s *MCPServer) handleExecuteWalExpression(params map[string]interface{}) (*envelope.Response, error) {
	file, err := stringParam(params, "waveformFile")
	if err != nil {
		return nil, err
	}
	expression, err := stringParam(params, "expression")
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Execute(s.resolvePath(file), expression)
	if err != nil {
		return s.failure(file, err), nil
	}

	b := envelope.New().Data(res)
	if !res.Success {
		b.Warning("wal-execution-failed", fmt.Sprintf("expression failed: %s", res.Error))
		b.Suggest("getWalHelp", "review WAL syntax and examples", map[string]interface{}{
			"topic": "debugging",
		})
	}
	return b.Build(), nil
}

func (s *MCPServer) handleGetWalHelp(params map[string]interface{}) (*envelope.Response, error) {
	topic, err := optionalStringParam(params, "topic")
	if err != nil {
		return nil, err
	}
	return envelope.Operational(s.engine.Help(topic)), nil
}

func (s *MCPServer) handleGetWalExamples(params map[string]interface{}) (*envelope.Response, error) {
	file, err := stringParam(params, "waveformFile")
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Examples(s.resolvePath(file))
	if err != nil {
		return s.failure(file, err), nil
	}
	return envelope.Operational(res), nil
}
