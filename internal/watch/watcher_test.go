package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agridesk/internal/hub"
	"agridesk/internal/types"
)

func TestModuleForFile(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/tmp/inbox/finances.csv", "finances"},
		{"/tmp/inbox/cultures.CSV", "cultures"},
		{"/tmp/inbox/notes.txt", ""},
		{"/tmp/inbox/archive.tar.gz", ""},
	}
	for _, tc := range cases {
		if got := ModuleForFile(tc.path); got != tc.want {
			t.Errorf("ModuleForFile(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDroppedFileIsImportedAndConsumed(t *testing.T) {
	h := hub.New(hub.Options{})
	h.RegisterModule(hub.Module{
		Name: "finances",
		Columns: []types.Column{
			{Key: "id", Header: "ID"},
			{Key: "name", Header: "Libellé"},
			{Key: "amount", Header: "Montant"},
		},
	}, nil)

	dir := t.TempDir()
	w, err := New(dir, h)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	path := filepath.Join(dir, "finances.csv")
	if err := os.WriteFile(path, []byte("id,name,amount\n1,Carburant,45\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(h.GetModuleData("finances").Items) == 1 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if got := len(h.GetModuleData("finances").Items); got != 1 {
		t.Fatalf("imported %d records, want 1", got)
	}

	// The consumed drop is removed from the inbox
	deadline = time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("consumed inbox file was not removed")
}

func TestNonModuleFileIsIgnored(t *testing.T) {
	h := hub.New(hub.Options{})
	h.RegisterModule(hub.Module{Name: "finances", Columns: []types.Column{{Key: "id", Header: "ID"}}}, nil)

	dir := t.TempDir()
	w, err := New(dir, h)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	path := filepath.Join(dir, "unknown.csv")
	if err := os.WriteFile(path, []byte("id\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(settleDelay * 3)
	if got := len(h.GetModuleData("unknown").Items); got != 0 {
		t.Errorf("unknown module gained %d records", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("ignored file should stay in the inbox")
	}
}
