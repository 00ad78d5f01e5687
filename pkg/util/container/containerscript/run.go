// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package containerscript

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/containers/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
)

// progressInterval is the minimum time between two progress entries logged
// by Run at verbosity 1.
var progressInterval = 10 * time.Second

// Run executes the script read from r line by line and writes the output of
// every operation to w. Blank lines and lines starting with '#' are skipped.
// When echo is set, each line is written to w, prefixed with "> ", before
// its output.
//
// Failed operations are reported in the output and do not stop the script.
// The returned error is non-nil only if reading r or writing w fails, or if
// ctx is canceled.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer, echo bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	var executed, failed int
	progress := log.Every(progressInterval)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lineCtx := logtags.AddTag(ctx, "line", lineNo)
		if echo {
			if _, err := fmt.Fprintf(w, "> %s\n", line); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}
		out, err := s.ExecLine(line)
		executed++
		if err != nil {
			failed++
			log.VEventf(lineCtx, 1, "%s: %v", line, err)
		} else {
			log.VEventf(lineCtx, 2, "%s", line)
		}
		if _, err := fmt.Fprintln(w, Render(out, err)); err != nil {
			return errors.Wrap(err, "writing output")
		}
		if log.V(1) && progress.ShouldLog() {
			log.Infof(ctx, "executed %d operations so far, %d failed", executed, failed)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading script at line %d", lineNo+1)
	}
	log.VEventf(ctx, 1, "executed %d operations, %d failed", executed, failed)
	return nil
}
