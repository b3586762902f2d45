package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/contentops/taxo/pkg/taxo/store"
)

func TestSaveGetList(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"01A", "01B", "01C"} {
		if err := s.SaveRun(ctx, store.Run{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatal(err)
		}
	}

	got, ok, err := s.GetRun(ctx, "01B")
	if err != nil || !ok {
		t.Fatalf("GetRun: ok=%v err=%v", ok, err)
	}
	if got.ID != "01B" {
		t.Errorf("Got wrong run: %+v", got)
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != "01C" {
		t.Errorf("ListRuns should be newest-first and limited: %v", runs)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, ok, err := s.GetRun(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Missing run should report ok=false")
	}
}
