package worker_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/remaimber-it/quizbank/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	p := worker.NewPool[int](3, 4)

	const n = 20
	go func() {
		for i := 0; i < n; i++ {
			i := i
			p.Submit(strconv.Itoa(i), func() int { return i * i })
		}
		p.Close()
	}()

	var outputs []int
	for r := range p.Results() {
		want, _ := strconv.Atoi(r.JobID)
		if r.Output != want*want {
			t.Errorf("job %s: expected %d, got %d", r.JobID, want*want, r.Output)
		}
		outputs = append(outputs, r.Output)
	}

	if len(outputs) != n {
		t.Fatalf("expected %d results, got %d", n, len(outputs))
	}
	sort.Ints(outputs)
	if outputs[0] != 0 || outputs[n-1] != (n-1)*(n-1) {
		t.Errorf("unexpected outputs %v", outputs)
	}
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	p := worker.NewPool[error](0, 1)
	p.Close()
	p.Close()

	if _, ok := <-p.Results(); ok {
		t.Error("expected results to be closed")
	}
}
