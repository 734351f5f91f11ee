package main

import (
	"bytes"
	"strings"
	"testing"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/render"
)

func TestFrameStatsCountsOneFrame(t *testing.T) {
	stats := frameStats(5, 400, 300, 7)

	if len(stats) != len(cfg.Sessions) {
		t.Fatalf("expected %d sessions, got %d", len(cfg.Sessions), len(stats))
	}
	for _, st := range stats {
		if st.Ops[render.OpClearRect]+st.Ops[render.OpFillRect] != 1 {
			t.Errorf("%s: expected one background pass, got %v", st.ID, st.Ops)
		}
		switch st.ID {
		case cfg.NetworkID:
			if st.Entities != 80 || st.Packets != 15 || st.Ops[render.OpFillCircle] != 95 {
				t.Errorf("network: unexpected stats %+v", st)
			}
		case cfg.SecurityID:
			if st.Ops[render.OpStrokePolygon] != 20 {
				t.Errorf("security: expected 20 badges, got %d", st.Ops[render.OpStrokePolygon])
			}
		case cfg.DataTransferID:
			if st.Ops[render.OpStrokeGradientLine] != 30 {
				t.Errorf("data transfer: expected 30 streams, got %d", st.Ops[render.OpStrokeGradientLine])
			}
		}
	}
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	writeStats(&buf, frameStats(1, 200, 100, 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(cfg.Sessions)+1 {
		t.Fatalf("expected header plus %d rows, got %d lines", len(cfg.Sessions), len(lines))
	}
	if !strings.Contains(lines[0], "fill-circle") || !strings.HasPrefix(lines[1], cfg.NetworkID) {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}
