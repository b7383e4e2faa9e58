package nodelink

import (
	"context"
	"errors"
	"testing"

	"github.com/matzehuels/conllview/pkg/cache"
	cverrors "github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/observability"
)

type countingRenderer struct {
	calls int
	err   error
}

func (r *countingRenderer) RenderSVG(dot string) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []byte("<svg>" + dot + "</svg>"), nil
}

type recordingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestCachedRenderer(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	inner := &countingRenderer{}
	r := NewCachedRenderer(inner, fc, DefaultCacheTTL)

	first, err := r.RenderSVG("digraph deptree {}")
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	second, err := r.RenderSVG("digraph deptree {}")
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("cached output %q differs from rendered %q", second, first)
	}
	if inner.calls != 1 {
		t.Errorf("inner renderer called %d times, want 1", inner.calls)
	}
	if hooks.hits != 1 || hooks.misses != 1 || hooks.sets != 1 {
		t.Errorf("hooks hits=%d misses=%d sets=%d, want 1/1/1", hooks.hits, hooks.misses, hooks.sets)
	}

	if _, err := r.RenderSVG("digraph other {}"); err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("different DOT should miss, inner calls = %d", inner.calls)
	}
}

func TestCachedRenderer_ErrorNotCached(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	inner := &countingRenderer{err: errors.New("boom")}
	r := NewCachedRenderer(inner, fc, 0)

	for range 2 {
		if _, err := r.RenderSVG("digraph deptree {}"); err == nil {
			t.Fatal("RenderSVG() should propagate inner error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("failed renders must not be cached, inner calls = %d", inner.calls)
	}
}

func TestCachedRenderer_NilCache(t *testing.T) {
	inner := &countingRenderer{}
	r := NewCachedRenderer(inner, nil, 0)

	_, _ = r.RenderSVG("x")
	_, _ = r.RenderSVG("x")
	if inner.calls != 2 {
		t.Errorf("nil cache should never hit, inner calls = %d", inner.calls)
	}
}

type keyedRenderer struct {
	countingRenderer
	key string
}

func (r *keyedRenderer) CacheKey() string { return r.key }

func TestCachedRenderer_KeyedByRenderer(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	dot := "digraph deptree {}"

	a := &keyedRenderer{key: "a"}
	if _, err := NewCachedRenderer(a, fc, DefaultCacheTTL).RenderSVG(dot); err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	b := &keyedRenderer{key: "b"}
	if _, err := NewCachedRenderer(b, fc, DefaultCacheTTL).RenderSVG(dot); err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if b.calls != 1 {
		t.Errorf("second renderer served from the first one's entry, calls = %d", b.calls)
	}

	broken := NewCachedRenderer(NewExecRenderer("conllview-no-such-dot"), fc, DefaultCacheTTL)
	svg, err := broken.RenderSVG(dot)
	if !cverrors.Is(err, cverrors.ErrCodeRendererSpawn) {
		t.Errorf("broken renderer = %q, %v; want RENDERER_SPAWN_FAILURE", svg, err)
	}
}

func TestRendererKey(t *testing.T) {
	keys := map[string]Renderer{
		"exec dot -Tsvg":      NewExecRenderer(""),
		"exec /opt/dot -Tsvg": NewExecRenderer("/opt/dot"),
		"graphviz":            GraphvizRenderer{},
	}
	for want, r := range keys {
		if got := rendererKey(r); got != want {
			t.Errorf("rendererKey(%T) = %q, want %q", r, got, want)
		}
	}
	if got := rendererKey(&countingRenderer{}); got != "*nodelink.countingRenderer" {
		t.Errorf("rendererKey(countingRenderer) = %q", got)
	}
}
