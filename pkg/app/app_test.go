package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

func names(list []task.Task) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Name
	}
	return out
}

func TestServiceAddEditComplete(t *testing.T) {
	ctx := context.Background()
	svc := New(logging.Discard())

	if i, err := svc.Add(ctx, "Buy milk"); err != nil || i != 0 {
		t.Fatalf("Add = %d, %v", i, err)
	}
	if i, err := svc.Add(ctx, "Walk dog"); err != nil || i != 1 {
		t.Fatalf("Add = %d, %v", i, err)
	}
	if err := svc.Edit(ctx, 1, "Walk the dog"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	done, at, err := svc.Complete(ctx, 0)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if done.Name != "Buy milk" || at != 0 {
		t.Fatalf("Complete returned %q at %d", done.Name, at)
	}

	st := svc.Snapshot()
	if got := names(st.Pending); !reflect.DeepEqual(got, []string{"Walk the dog"}) {
		t.Fatalf("pending = %v", got)
	}
	if got := names(st.Completed); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Fatalf("completed = %v", got)
	}
	if st.EditorOpen {
		t.Fatalf("one-shot helpers must leave the editor closed")
	}
}

func TestServiceEmptyName(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)

	if _, err := svc.Add(ctx, "   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Add blank = %v, want ErrEmptyName", err)
	}
	if _, err := svc.Add(ctx, "keep"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Edit(ctx, 0, ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Edit blank = %v, want ErrEmptyName", err)
	}
	if got := names(svc.Snapshot().Pending); !reflect.DeepEqual(got, []string{"keep"}) {
		t.Fatalf("pending = %v", got)
	}
}

func TestServiceIndexErrors(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)

	if _, _, err := svc.Complete(ctx, 0); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("Complete = %v", err)
	}
	if _, err := svc.Delete(ctx, 3); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("Delete = %v", err)
	}
	if err := svc.Edit(ctx, -1, "x"); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("Edit = %v", err)
	}
	if err := svc.OpenEditorAt(ctx, 0); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("OpenEditorAt = %v", err)
	}
}

func TestServiceEditorFlow(t *testing.T) {
	ctx := context.Background()
	svc := &Service{}

	svc.OpenEditor(ctx)
	svc.SetDraft(ctx, "Draft")
	if out := svc.Submit(ctx); out != store.OutcomeAdded {
		t.Fatalf("Submit = %v", out)
	}
	if err := svc.OpenEditorAt(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if st := svc.Snapshot(); !st.EditorOpen || !st.Editing || st.Draft != "Draft" {
		t.Fatalf("unexpected editor state %+v", st)
	}
	svc.CloseEditor(ctx)
	svc.SwitchTab(ctx, task.Completed)

	st := svc.Snapshot()
	if st.EditorOpen || st.Draft != "" {
		t.Fatalf("editor should be closed and cleared: %+v", st)
	}
	if st.ActiveTab != task.Completed {
		t.Fatalf("tab = %v", st.ActiveTab)
	}
	if got := names(st.Pending); !reflect.DeepEqual(got, []string{"Draft"}) {
		t.Fatalf("pending = %v", got)
	}
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)
	for _, n := range []string{"a", "b", "c"} {
		if _, err := svc.Add(ctx, n); err != nil {
			t.Fatal(err)
		}
	}
	gone, err := svc.Delete(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if gone.Name != "b" {
		t.Fatalf("Delete returned %q", gone.Name)
	}
	st := svc.Snapshot()
	if got := names(st.Pending); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("pending = %v", got)
	}
	if len(st.Completed) != 0 {
		t.Fatalf("delete must not complete")
	}
}

func TestServiceConcurrentCompletes(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)
	const n = 40
	for i := 0; i < n; i++ {
		if _, err := svc.Add(ctx, fmt.Sprintf("task %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got = map[string]int{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			done, at, err := svc.Complete(ctx, 0)
			if err != nil {
				t.Errorf("Complete: %v", err)
				return
			}
			mu.Lock()
			got[done.Name] = at
			mu.Unlock()
		}()
	}
	wg.Wait()

	completed := svc.Snapshot().Completed
	if len(completed) != n {
		t.Fatalf("completed = %d, want %d", len(completed), n)
	}
	for name, at := range got {
		if completed[at].Name != name {
			t.Fatalf("Complete reported %q at %d, list has %q", name, at, completed[at].Name)
		}
	}
}

func TestServiceConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.Add(ctx, fmt.Sprintf("task %d", i)); err != nil {
				t.Errorf("Add: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(svc.Snapshot().Pending); got != 50 {
		t.Fatalf("pending = %d, want 50", got)
	}
}
