package ports

import (
	"context"
	"io"

	"go.trai.ch/relock/internal/core/domain"
)

// PinCompiler invokes the external dependency resolver to produce a
// pinned requirements file from an abstract spec. Resolution itself is
// entirely the external tool's business.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type PinCompiler interface {
	// Compile runs one resolver pass described by req.
	//
	// The resolver's stdout/stderr are streamed to the given writers,
	// typically telemetry vertex streams. A non-zero exit is returned
	// as domain.ErrCompileFailed with the exit code attached.
	Compile(ctx context.Context, req domain.CompileRequest, stdout, stderr io.Writer) error
}
