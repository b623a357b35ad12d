package predict

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/metrics"
)

// Runner executes a prediction script with a JSON payload and returns the
// first line of its output that looks like a JSON object.
type Runner interface {
	Run(ctx context.Context, script string, payload []byte) ([]byte, error)
}

// ScriptRunner runs `<Interpreter> <Dir>/<script> '<payload>'` inside Dir.
type ScriptRunner struct {
	Interpreter string
	Dir         string
	Timeout     time.Duration
}

func NewScriptRunner(interpreter, dir string, timeout time.Duration) *ScriptRunner {
	return &ScriptRunner{Interpreter: interpreter, Dir: dir, Timeout: timeout}
}

func (r *ScriptRunner) Run(ctx context.Context, script string, payload []byte) ([]byte, error) {
	path := filepath.Join(r.Dir, script)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, path)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Interpreter, path, string(payload))
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "PYTHONIOENCODING=utf-8")
	// don't hang on grandchildren still holding the output pipe
	cmd.WaitDelay = time.Second

	start := time.Now()
	output, err := cmd.CombinedOutput()
	metrics.ObserveDelegate(script, start)

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s: %s", ErrTimeout, r.Timeout, script)
	}
	if err != nil {
		logging.Debug().Str("script", script).Str("output", tail(output, 512)).Msg("ScriptRunner.Run(): script output")
		return nil, fmt.Errorf("%w: %s: %v", ErrScriptFailed, script, err)
	}

	line, ok := firstJSONLine(output)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoOutput, script)
	}
	return line, nil
}

// firstJSONLine skips log chatter printed before the result object.
func firstJSONLine(output []byte) ([]byte, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if bytes.HasPrefix(line, []byte("{")) {
			return append([]byte(nil), line...), true
		}
	}
	return nil, false
}

func tail(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return "..." + s[len(s)-n:]
	}
	return s
}
