package cas_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.libhal.dev/halpack/internal/adapters/cas"
	"go.libhal.dev/halpack/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := cas.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	rec := domain.BuildRecord{
		Name:       domain.PackageName,
		Version:    domain.PackageVersion,
		Digest:     "deadbeefdeadbeef",
		Options:    map[string]bool{domain.OptionAddBuildOutputs: true},
		Files:      []string{"licenses/LICENSE", "cmake/build.cmake"},
		PackagedAt: time.Now().UTC(),
	}

	if err := store.Put(tmpDir, rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(tmpDir, rec.Ref())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}

	if got.Digest != rec.Digest {
		t.Errorf("expected Digest %q, got %q", rec.Digest, got.Digest)
	}
	if len(got.Files) != 2 {
		t.Errorf("expected 2 files, got %d", len(got.Files))
	}
}

func TestStore_Get_Missing(t *testing.T) {
	store, err := cas.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get(t.TempDir(), "libhal-cmake-util/3.0.1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record for missing ref, got %+v", got)
	}
}

func TestStore_Put_Replaces(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := cas.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	first := domain.BuildRecord{
		Name:    domain.PackageName,
		Version: domain.PackageVersion,
		Digest:  "1111111111111111",
	}
	if err := store.Put(tmpDir, first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	second := first
	second.Digest = "2222222222222222"
	if err := store.Put(tmpDir, second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(tmpDir, first.Ref())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Digest != "2222222222222222" {
		t.Errorf("expected replaced digest, got %q", got.Digest)
	}
}

func TestStore_OmitZero(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := cas.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	rec := domain.BuildRecord{
		Name:    domain.PackageName,
		Version: domain.PackageVersion,
	}
	if err := store.Put(tmpDir, rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	hash := sha256.Sum256([]byte(rec.Ref()))
	filename := filepath.Join(tmpDir, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	content := string(data)
	for _, key := range []string{"digest", "options", "files", "packaged_at"} {
		if strings.Contains(content, key) {
			t.Errorf("expected zero field %q to be omitted, file content:\n%s", key, content)
		}
	}
}

func TestStore_Get_Corrupt(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := cas.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	ref := domain.PackageName + "/" + domain.PackageVersion
	hash := sha256.Sum256([]byte(ref))
	filename := filepath.Join(tmpDir, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filename, []byte("{not json"), domain.FilePerm); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(tmpDir, ref); err == nil {
		t.Error("expected error for corrupt record")
	}
}
