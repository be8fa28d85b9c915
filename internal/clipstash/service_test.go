package clipstash

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/clipstash/internal/clipboard"
	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/exchange"
	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

func newTestService(t *testing.T, cb clipboard.Gateway) (*Service, *jsonfile.File) {
	t.Helper()
	if cb == nil {
		cb = clipboard.NewMemory("")
	}

	file := jsonfile.New(filepath.Join(t.TempDir(), "clipboard.json"))
	svc, err := Open(file, cb, zerolog.Nop(), "default")
	require.NoError(t, err)
	return svc, file
}

// reload reads the data file back so tests assert on durable state.
func reload(t *testing.T, file *jsonfile.File) *clip.Store {
	t.Helper()
	s, err := file.Load()
	require.NoError(t, err)
	return s
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	svc, file := newTestService(t, nil)

	assert.True(t, svc.Store().Empty())
	assert.Equal(t, "default", svc.Store().Current())

	exists, err := file.Exists()
	require.NoError(t, err)
	assert.False(t, exists, "opening does not create the file")
}

func TestOpen_LoadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"work":{"snippet":"echo hi"}}`), 0o644))

	svc, err := Open(jsonfile.New(path), clipboard.NewMemory(""), zerolog.Nop(), "work")
	require.NoError(t, err)

	v, err := svc.Get(context.Background(), "work", "snippet")
	require.NoError(t, err)
	assert.Equal(t, "echo hi", v)
	assert.Equal(t, "work", svc.Store().Current())
}

func TestOpen_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`["nope"]`), 0o644))

	_, err := Open(jsonfile.New(path), clipboard.NewMemory(""), zerolog.Nop(), "")
	require.ErrorIs(t, err, clip.ErrCorruptData)
}

func TestCapture(t *testing.T) {
	ctx := context.Background()
	svc, file := newTestService(t, clipboard.NewMemory("kubectl get pods"))

	value, err := svc.Capture(ctx, "work", "pods")
	require.NoError(t, err)
	assert.Equal(t, "kubectl get pods", value)
	assert.Equal(t, "work", svc.Store().Current())

	v, err := reload(t, file).GetEntry("work", "pods")
	require.NoError(t, err)
	assert.Equal(t, "kubectl get pods", v)
}

func TestCapture_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, file := newTestService(t, nil)

	_, err := svc.Capture(ctx, "", "k")
	require.ErrorIs(t, err, clip.ErrInvalidInput)

	_, err = svc.Capture(ctx, "h", "  ")
	require.ErrorIs(t, err, clip.ErrInvalidInput)

	exists, _ := file.Exists()
	assert.False(t, exists)
}

func TestPut_RejectsInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	svc, file := newTestService(t, clipboard.NewMemory("bin\xff\xfe"))

	require.ErrorIs(t, svc.Put(ctx, "h", "k", "caf\xe9"), clip.ErrInvalidInput)
	require.ErrorIs(t, svc.Put(ctx, "h\xff", "k", "v"), clip.ErrInvalidInput)

	_, err := svc.Capture(ctx, "h", "k")
	require.ErrorIs(t, err, clip.ErrInvalidInput)

	assert.True(t, svc.Store().Empty())
	exists, _ := file.Exists()
	assert.False(t, exists)
}

func TestCapture_ClipboardUnavailable(t *testing.T) {
	svc, _ := newTestService(t, clipboard.Unavailable{})

	_, err := svc.Capture(context.Background(), "h", "k")
	require.ErrorIs(t, err, clip.ErrClipboardUnavailable)
	assert.False(t, IsPersistError(err))
	assert.True(t, svc.Store().Empty())
}

func TestRecall(t *testing.T) {
	ctx := context.Background()
	cb := clipboard.NewMemory("")
	svc, _ := newTestService(t, cb)
	require.NoError(t, svc.Put(ctx, "work", "snippet", "echo hi"))
	svc.Store().SetCurrent("other")

	value, err := svc.Recall(ctx, "work", "snippet")
	require.NoError(t, err)
	assert.Equal(t, "echo hi", value)
	assert.Equal(t, "work", svc.Store().Current())

	got, err := cb.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "echo hi", got)

	_, err = svc.Recall(ctx, "work", "missing")
	require.ErrorIs(t, err, clip.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, file := newTestService(t, nil)
	require.NoError(t, svc.Put(ctx, "h", "k", "v"))

	require.NoError(t, svc.Delete(ctx, "h", "k"))

	_, err := svc.Get(ctx, "h", "k")
	require.ErrorIs(t, err, clip.ErrNotFound)

	_, err = reload(t, file).GetEntry("h", "k")
	require.ErrorIs(t, err, clip.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "h", "k"), clip.ErrNotFound)
}

func TestPersistError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The data file's parent is a regular file, so every save fails.
	svc, err := Open(jsonfile.New(filepath.Join(blocker, "clipboard.json")), clipboard.NewMemory(""), zerolog.Nop(), "")
	require.NoError(t, err)

	err = svc.Put(ctx, "h", "k", "v")
	require.Error(t, err)
	assert.True(t, IsPersistError(err))
	require.ErrorIs(t, err, clip.ErrIO)

	// The mutation itself happened.
	v, err := svc.Get(ctx, "h", "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	// A plain persist reports the underlying failure, not a PersistError.
	err = svc.Persist(ctx)
	require.ErrorIs(t, err, clip.ErrIO)
	assert.False(t, IsPersistError(err))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)
	require.NoError(t, svc.Put(ctx, "work", "greeting", "echo hi"))
	require.NoError(t, svc.Put(ctx, "work", "other", "ls"))

	results, err := svc.Search(ctx, "echo")
	require.NoError(t, err)
	assert.Equal(t, clip.Results{"work": {"greeting": "echo hi"}}, results)

	_, err = svc.Search(ctx, "")
	require.ErrorIs(t, err, clip.ErrInvalidInput)
}

func TestHistories(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)
	for _, h := range []string{"work", "work-old", "home", "projects/api"} {
		require.NoError(t, svc.Put(ctx, h, "k", "v"))
	}

	all, err := svc.Histories("")
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "projects/api", "work", "work-old"}, all)

	work, err := svc.Histories("work*")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "work-old"}, work)

	nested, err := svc.Histories("projects/**")
	require.NoError(t, err)
	assert.Equal(t, []string{"projects/api"}, nested)

	_, err = svc.Histories("[")
	require.ErrorIs(t, err, clip.ErrInvalidInput)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src, _ := newTestService(t, nil)
	require.NoError(t, src.Put(ctx, "work", "snippet", "echo hi"))
	require.NoError(t, src.Put(ctx, "work", "blank", ""))

	for _, format := range exchange.Formats {
		t.Run(format.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "export."+format.String())
			require.NoError(t, src.Export(ctx, path, format))

			dst, file := newTestService(t, nil)
			require.NoError(t, dst.Put(ctx, "work", "snippet", "old"))

			stats, err := dst.Import(ctx, path, format)
			require.NoError(t, err)
			assert.Equal(t, clip.MergeStats{Added: 1, Updated: 1}, stats)

			assert.True(t, reload(t, file).Equal(src.Store()))
		})
	}
}

func TestImport_CorruptLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)
	require.NoError(t, svc.Put(ctx, "h", "k", "v"))
	before := svc.Store().Clone()

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("h,k,new\nonly,two\n"), 0o644))

	_, err := svc.Import(ctx, path, exchange.CSV)
	require.ErrorIs(t, err, clip.ErrCorruptData)
	assert.False(t, IsPersistError(err))
	assert.True(t, svc.Store().Equal(before))
}
