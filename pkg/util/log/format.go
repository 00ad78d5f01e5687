// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// makeEntry renders a single log line:
//
//	<severity letter><yymmdd hh:mm:ss.uuuuuu> [<tags>] <message>
//
// The tag section is omitted when the context carries no tags.
func makeEntry(
	ctx context.Context, sev Severity, now time.Time, redactable bool, format string, args []interface{},
) string {
	var buf strings.Builder
	buf.WriteByte(sev.letter())
	buf.WriteString(now.UTC().Format("060102 15:04:05.000000"))
	buf.WriteByte(' ')
	formatTags(ctx, &buf)
	msg := redact.Sprintf(format, args...)
	if redactable {
		buf.WriteString(string(msg))
	} else {
		buf.WriteString(msg.StripMarkers())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteByte('\n')
	}
	return buf.String()
}

// FormatWithContextTags formats the string and prepends the context tags.
// Redaction markers are not inserted.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	formatTags(ctx, &buf)
	buf.WriteString(redact.Sprintf(format, args...).StripMarkers())
	return buf.String()
}

func formatTags(ctx context.Context, buf *strings.Builder) {
	tags := logtags.FromContext(ctx)
	if tags == nil || len(tags.Get()) == 0 {
		return
	}
	buf.WriteByte('[')
	buf.WriteString(tags.String())
	buf.WriteString("] ")
}
