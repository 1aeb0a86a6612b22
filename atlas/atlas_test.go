package atlas

import "image"
import "testing"

import "github.com/npillmayer/schuko/tracing/gotestingadapter"

type upload struct {
	region image.Rectangle
	pixels []byte
}

type recordingManager struct {
	created int
	uploads []upload
}

func (self *recordingManager) CreateTexture(width, height int) (Texture, error) {
	self.created += 1
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func (self *recordingManager) UploadRegion(texture Texture, region image.Rectangle, pixels []byte) error {
	self.uploads = append(self.uploads, upload{ region, append([]byte(nil), pixels...) })
	rgba := texture.(*image.RGBA)
	stride := region.Dx()*4
	for y := 0; y < region.Dy(); y++ {
		copy(rgba.Pix[rgba.PixOffset(region.Min.X, region.Min.Y + y):], pixels[y*stride : (y + 1)*stride])
	}
	return nil
}

func TestAtlasPlace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontstash.atlas")
	defer teardown()

	atlas := New(32, 32)
	placement := atlas.Place(20, 20)
	if placement.Status != Placed || placement.Rect != image.Rect(0, 0, 20, 20) {
		t.Fatalf("unexpected placement %v %v", placement.Status, placement.Rect)
	}
	placement = atlas.Place(20, 20)
	if placement.Status != Full {
		t.Fatalf("expected Full, got %v at %v", placement.Status, placement.Rect)
	}
	if atlas.Texture() != nil {
		t.Fatalf("texture created before any glyph was rendered")
	}
}

func TestAtlasRenderGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontstash.atlas")
	defer teardown()

	manager := &recordingManager{}
	atlas := New(16, 16)
	rect := image.Rect(1, 1, 4, 3) // glyph at the corner, pad clamps
	err := atlas.RenderGlyph(manager, rect, 2, func(pixels []byte, stride int) error {
		if stride != 12 || len(pixels) != 24 {
			t.Fatalf("unexpected buffer: stride %d, len %d", stride, len(pixels))
		}
		for i := range pixels { pixels[i] = 0xFF }
		return nil
	})
	if err != nil { t.Fatal(err) }

	if manager.created != 1 {
		t.Fatalf("expected one texture, got %d", manager.created)
	}
	if len(manager.uploads) != 2 {
		t.Fatalf("expected clear + glyph uploads, got %d", len(manager.uploads))
	}
	clear := manager.uploads[0]
	if clear.region != image.Rect(0, 0, 6, 5) {
		t.Fatalf("unexpected clear region %v", clear.region)
	}
	for _, value := range clear.pixels {
		if value != 0 { t.Fatalf("clear upload contains non zero pixels") }
	}
	if manager.uploads[1].region != rect {
		t.Fatalf("glyph uploaded to %v instead of %v", manager.uploads[1].region, rect)
	}
	rgba := atlas.Texture().(*image.RGBA)
	if rgba.RGBAAt(2, 2).A != 0xFF || rgba.RGBAAt(0, 0).A != 0 {
		t.Fatalf("texture content mismatch")
	}

	// second glyph reuses the texture
	err = atlas.RenderGlyph(manager, image.Rect(8, 8, 10, 10), 2, func([]byte, int) error { return nil })
	if err != nil { t.Fatal(err) }
	if manager.created != 1 {
		t.Fatalf("texture recreated")
	}
}

func TestAtlasExistingTexture(t *testing.T) {
	texture := image.NewRGBA(image.Rect(0, 0, 64, 32))
	atlas, err := NewWithTexture(texture, image.Rect(0, 0, 64, 10))
	if err != nil { t.Fatal(err) }
	if atlas.Width() != 64 || atlas.Height() != 32 {
		t.Fatalf("atlas didn't take the texture size")
	}
	placement := atlas.Place(8, 8)
	if placement.Status != Placed || placement.Rect.Min.Y != 10 {
		t.Fatalf("used space not respected: %v", placement.Rect)
	}

	_, err = NewWithTexture(texture, image.Rect(0, 0, 65, 10))
	if err == nil { t.Fatalf("out of bounds used space accepted") }
}
