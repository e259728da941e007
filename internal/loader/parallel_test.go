package loader

import (
	"context"
	"fmt"
	"testing"

	"github.com/flarebyte/coursegraph/internal/testutil"
)

func TestParallelMap_IndexOrder(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		got := parallelMap(50, workers, func(i int) int { return i * i })
		for i, v := range got {
			if v != i*i {
				t.Fatalf("workers=%d: got[%d] = %d", workers, i, v)
			}
		}
	}
	if got := parallelMap(0, 1, func(i int) int { return i }); len(got) != 0 {
		t.Fatalf("expected no results, got %v", got)
	}
}

func TestLoadDir_MergeOrderIsPathOrder(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		testutil.WriteFile(t, root, fmt.Sprintf("f%02d.courses.json", i),
			fmt.Sprintf(`{"classes":[{"course number":"N%02d","course name":"Shared"}]}`, i))
	}
	for run := 0; run < 5; run++ {
		c, err := LoadDir(context.Background(), root)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		r, ok := c.Course("Shared")
		if !ok || r.Number != "N19" {
			t.Fatalf("run %d: expected last file to win, got %+v", run, r)
		}
	}
}

func TestWorkerCount(t *testing.T) {
	if workerCount(0) != 1 || workerCount(1) != 1 {
		t.Fatalf("workerCount must be at least 1 and at most n")
	}
	if got := workerCount(1 << 20); got < 1 {
		t.Fatalf("workerCount = %d", got)
	}
}
