package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mdpdf/pkg/observability"
)

// logHooks logs pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = (*logHooks)(nil)

func (h *logHooks) OnDiscoverStart(_ context.Context, root string) {
	h.logger.Debug("discovering", "root", root)
}

func (h *logHooks) OnDiscoverComplete(_ context.Context, root string, files int, d time.Duration, err error) {
	h.logger.Debug("discovery finished", "root", root, "files", files, "duration", d, "err", err)
}

func (h *logHooks) OnFileProcessed(_ context.Context, relPath string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("file skipped", "file", relPath, "duration", d, "err", err)
		return
	}
	h.logger.Debug("file processed", "file", relPath, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("rendering", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, pages int, d time.Duration, err error) {
	h.logger.Debug("render finished", "format", format, "pages", pages, "duration", d, "err", err)
}
