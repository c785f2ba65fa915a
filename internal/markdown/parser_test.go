package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

func TestGoldmarkParserDefaults(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := parser.Parse([]byte("# Title\n\n- [x] done\n\nhttps://example.com"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<h1 id="title">Title</h1>`) {
		t.Fatalf("expected heading with auto id, got %s", html)
	}
	if !strings.Contains(html, `type="checkbox"`) {
		t.Fatalf("expected task list checkbox, got %s", html)
	}
	if !strings.Contains(html, `<a href="https://example.com">`) {
		t.Fatalf("expected linkified url, got %s", html)
	}
}

func TestGoldmarkParserSafeMode(t *testing.T) {
	raw := []byte("<div>raw</div>")

	unsafe, _ := NewGoldmarkParser(interfaces.ParseOptions{}).Parse(raw)
	if !strings.Contains(string(unsafe), "<div>raw</div>") {
		t.Fatalf("expected raw html to pass through, got %s", unsafe)
	}

	safe, _ := NewGoldmarkParser(interfaces.ParseOptions{}).ParseWithOptions(raw, interfaces.ParseOptions{SafeMode: true})
	if strings.Contains(string(safe), "<div>raw</div>") {
		t.Fatalf("expected raw html to be omitted in safe mode, got %s", safe)
	}
}

func TestGoldmarkParserHardWraps(t *testing.T) {
	out, _ := NewGoldmarkParser(interfaces.ParseOptions{HardWraps: true}).Parse([]byte("a\nb"))
	if !strings.Contains(string(out), "<br") {
		t.Fatalf("expected hard wrap, got %s", out)
	}
}

func TestCollectExtensionsIgnoresUnknownNames(t *testing.T) {
	exts := collectExtensions([]string{"Table", "table", "nope", " "})
	if len(exts) != 1 {
		t.Fatalf("expected a single extension, got %d", len(exts))
	}
}
