package selfie

import "testing"

func TestFindImageURLNestedImage(t *testing.T) {
	data := []any{
		[]any{
			map[string]any{"image": map[string]any{"url": "/file/a.png"}, "caption": nil},
		},
	}
	url, ok := findImageURL(data)
	if !ok || url != "/file/a.png" {
		t.Fatalf("unexpected result: %q %v", url, ok)
	}
}

func TestFindImageURLPathFallback(t *testing.T) {
	data := []any{map[string]any{"path": "/tmp/b.png"}}
	url, ok := findImageURL(data)
	if !ok || url != "/tmp/b.png" {
		t.Fatalf("unexpected result: %q %v", url, ok)
	}
}

func TestFindImageURLMissing(t *testing.T) {
	if _, ok := findImageURL([]any{"just text", 42.0}); ok {
		t.Fatal("expected no image url")
	}
}
