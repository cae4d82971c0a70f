package resume

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText downloads the object and pulls its plain text. Malformed
// files are reported as errors rather than partial text.
func (s *Service) extractPDFText(ctx context.Context, handle string) (string, error) {
	data, err := s.store.Download(ctx, handle)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return strings.TrimSpace(sb.String()), nil
}
