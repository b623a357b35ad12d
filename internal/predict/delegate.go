package predict

import (
	"context"
	"encoding/json"
	"fmt"
)

// Delegate runs a script through a Runner and builds the result with decode.
// decode must go through the tool's validating constructor.
type Delegate[In, Out any] struct {
	runner Runner
	script string
	encode func(In) any
	decode func(line []byte) (Out, error)
}

func NewDelegate[In, Out any](runner Runner, script string, encode func(In) any, decode func([]byte) (Out, error)) *Delegate[In, Out] {
	return &Delegate[In, Out]{runner: runner, script: script, encode: encode, decode: decode}
}

func (d *Delegate[In, Out]) Predict(ctx context.Context, in In) (Out, error) {
	var zero Out
	payload, err := json.Marshal(d.encode(in))
	if err != nil {
		return zero, fmt.Errorf("encode %s input: %w", d.script, err)
	}
	line, err := d.runner.Run(ctx, d.script, payload)
	if err != nil {
		return zero, err
	}
	return d.decode(line)
}

// envelope is the part every script reply shares.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// decodeReply unmarshals line into dst after checking the success flag.
func decodeReply(line []byte, dst any) error {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%w: %s", ErrModelFailure, env.Error)
		}
		return ErrModelFailure
	}
	if err := json.Unmarshal(line, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return nil
}
