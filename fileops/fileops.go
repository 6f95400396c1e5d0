package fileops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// FileOps validates file operations and dispatches them to a host
// filesystem. It holds no per-call state and is safe for concurrent use.
type FileOps struct {
	host        core.FS
	caps        core.Capabilities
	validator   PathValidator
	logger      *Logger
	tempPattern string
}

// New returns a FileOps over host.
func New(host core.FS, opts ...Option) (*FileOps, error) {
	if host == nil {
		return nil, errors.New(errors.CodeNullArgument, "host cannot be nil")
	}
	cfg := newConfig(opts)
	if strings.ContainsAny(cfg.tempPattern, `/\`) {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "temp pattern %q contains a path separator", cfg.tempPattern),
			"pattern", cfg.tempPattern,
		)
	}
	if cfg.tempPattern == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "temp pattern cannot be empty")
	}
	return &FileOps{
		host:        host,
		caps:        core.CapabilitiesOf(host),
		validator:   cfg.validator,
		logger:      cfg.logger,
		tempPattern: cfg.tempPattern,
	}, nil
}

// Host returns the filesystem operations are dispatched to.
func (o *FileOps) Host() core.FS {
	return o.host
}

// Capabilities returns the host capabilities in effect.
func (o *FileOps) Capabilities() core.Capabilities {
	return o.caps
}

// call carries the error context and timing of a single operation.
type call struct {
	o     *FileOps
	op    Operation
	name  string
	start time.Time
	ctx   map[string]interface{}
}

func (o *FileOps) begin(op Operation, name string) *call {
	return &call{
		o:     o,
		op:    op,
		name:  name,
		start: time.Now(),
		ctx:   map[string]interface{}{"op": name},
	}
}

// with records a context field attached to every error the call returns.
func (c *call) with(key string, value interface{}) *call {
	c.ctx[key] = value
	return c
}

func (c *call) fail(code errors.ErrorCode, format string, args ...interface{}) error {
	return errors.WithContextMap(errors.Newf(code, format, args...), c.ctx)
}

func (c *call) wrap(err error, code errors.ErrorCode, format string, args ...interface{}) error {
	return errors.WrapWithContext(err, code, fmt.Sprintf(format, args...), c.ctx)
}

// host maps an error returned by the host filesystem into the taxonomy.
func (c *call) host(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	var pe errors.PlatformError
	if errors.As(err, &pe) {
		return errors.WithContextMap(err, c.ctx)
	}
	return c.wrap(err, hostCode(err), format, args...)
}

// done logs the outcome and returns err unchanged.
func (c *call) done(err error) error {
	logger := c.o.logger.WithOperation(c.op)
	if p, ok := c.ctx["path"].(string); ok {
		logger = logger.WithPath(p)
	}
	fields := make([]any, 0, 2*len(c.ctx))
	for _, k := range []string{"dest", "mode", "access", "kind"} {
		if v, ok := c.ctx[k]; ok {
			fields = append(fields, k, v)
		}
	}
	logOperation(context.Background(), logger, time.Since(c.start), fields, err)
	return err
}
