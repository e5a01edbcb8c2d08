package llm

import (
	"context"
	"fmt"
	"io"
	"time"
)

// LoggingProvider is a decorator that writes a one-line record of every
// request to a log writer. Logging failures never fail the request.
type LoggingProvider struct {
	inner Provider
	out   io.Writer
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, out io.Writer) Provider {
	return &LoggingProvider{inner: p, out: out}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	model := l.inner.ModelID()
	var in, out int
	if resp != nil {
		model = resp.Model
		in = resp.Usage.InputTokens
		out = resp.Usage.OutputTokens
	}

	status := "ok"
	if err != nil {
		status = "error: " + err.Error()
	}

	if l.out != nil {
		fmt.Fprintf(l.out, "%s purpose=%s model=%s in=%d out=%d latency=%dms %s\n",
			time.Now().Format(time.RFC3339), purpose, model, in, out, latencyMs, status)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
