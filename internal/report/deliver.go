package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/vocab"
)

// Deliverer consumes a finished run. Errors out of delivery are fatal for
// the run; by the time records are complete there is nothing left to degrade
// to.
type Deliverer interface {
	RenderAndDeliver(records []*vocab.Record, attachmentPath string) error
}

// Outbox is a file-drop deliverer for local runs and tests: the rendered
// digest lands in a directory instead of a mailbox.
type Outbox struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewOutbox creates a file-drop deliverer writing under dir.
func NewOutbox(dir string, logger *zap.Logger) *Outbox {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Outbox{dir: dir, logger: logger, now: time.Now}
}

// RenderAndDeliver writes the digest HTML next to the attachment reference.
func (o *Outbox) RenderAndDeliver(records []*vocab.Record, attachmentPath string) error {
	html, err := renderDigest(records, o.now())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(o.dir, 0755); err != nil {
		return fmt.Errorf("failed to create outbox directory: %w", err)
	}

	name := "digest_" + o.now().Format("2006-01-02") + ".html"
	path := filepath.Join(o.dir, name)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write digest: %w", err)
	}

	o.logger.Info("delivered digest to outbox",
		zap.String("file", path),
		zap.String("attachment", attachmentPath),
		zap.Int("words", len(records)))
	return nil
}
