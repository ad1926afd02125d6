package imagegen

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestToJPEG(t *testing.T) {
	out, err := ToJPEG(pngBytes(t, 2048, 512))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, maxEdge, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestToJPEG_NotAnImage(t *testing.T) {
	_, err := ToJPEG([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	name := Filename("  A Doctor, smiling!  ")
	assert.True(t, strings.HasPrefix(name, "a-doctor-smiling-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	assert.True(t, strings.HasPrefix(Filename("!!!"), "image-"))
	assert.NotEqual(t, Filename("same"), Filename("same"))
}

func TestClipDropClient_Generate(t *testing.T) {
	png := pngBytes(t, 4, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "imagine a sketch : a tent", r.FormValue("prompt"))
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	c := NewClipDropClient("secret", srv.URL, time.Second)
	out, err := c.Generate(context.Background(), "imagine a sketch : a tent")
	require.NoError(t, err)
	assert.Equal(t, png, out)
}

func TestClipDropClient_Errors(t *testing.T) {
	_, err := NewClipDropClient("", "", time.Second).Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"no credits"}`))
	}))
	defer srv.Close()

	_, err = NewClipDropClient("secret", srv.URL, time.Second).Generate(context.Background(), "x")
	assert.ErrorContains(t, err, "status 402")
}

func TestImgBBClient_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "tent.jpg", header.Filename)
		assert.Equal(t, []byte("jpegdata"), data)
		_, _ = w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/raw.jpg","display_url":"https://i.ibb.co/tent.jpg"}}`))
	}))
	defer srv.Close()

	url, err := NewImgBBClient("k", srv.URL, time.Second).Upload(context.Background(), "tent.jpg", []byte("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/tent.jpg", url)
}

func TestImgBBClient_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"status":400,"error":{"message":"Invalid API v1 key."}}`))
	}))
	defer srv.Close()

	_, err := NewImgBBClient("k", srv.URL, time.Second).Upload(context.Background(), "a.jpg", []byte("x"))
	assert.ErrorContains(t, err, "Invalid API v1 key.")
}

type fakeRenderer struct {
	out []byte
	err error
}

func (f fakeRenderer) Generate(context.Context, string) ([]byte, error) { return f.out, f.err }

type fakeHost struct {
	gotName string
	gotData []byte
}

func (f *fakeHost) Upload(_ context.Context, name string, data []byte) (string, error) {
	f.gotName = name
	f.gotData = data
	return "https://img.example/" + name, nil
}

func TestGenerator_Generate(t *testing.T) {
	host := &fakeHost{}
	g := NewGenerator(fakeRenderer{out: pngBytes(t, 8, 8)}, host)

	url, err := g.Generate(context.Background(), "blue tent")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/"+host.gotName, url)
	assert.True(t, strings.HasPrefix(host.gotName, "blue-tent-"))

	_, format, err := image.Decode(bytes.NewReader(host.gotData))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestGenerator_RendererFails(t *testing.T) {
	g := NewGenerator(fakeRenderer{err: errors.New("boom")}, &fakeHost{})

	_, err := g.Generate(context.Background(), "x")
	assert.ErrorContains(t, err, "boom")
}
