package illustration

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
	imagemock "github.com/dmitrijs2005/picdiary/internal/provider/imagegen/mock"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
	llmmock "github.com/dmitrijs2005/picdiary/internal/provider/llm/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestQuantize(t *testing.T) {
	cases := map[int]int{
		500: 512,
		350: 384,
		512: 512,
		1:   64,
		64:  64,
		65:  128,
		0:   0,
		-3:  0,
	}
	for in, want := range cases {
		assert.Equal(t, want, Quantize(in), "Quantize(%d)", in)
	}
}

func TestQuantize_AlwaysMultipleAndNotSmaller(t *testing.T) {
	for n := 1; n <= 2048; n++ {
		q := Quantize(n)
		require.Zero(t, q%Step, "n=%d", n)
		require.GreaterOrEqual(t, q, n)
		require.Less(t, q-n, Step)
	}
}

func TestIllustrate_RequestsQuantizedSize(t *testing.T) {
	img := encodePNG(t, color.RGBA{R: 255, A: 255})
	lm := &llmmock.Provider{Response: "a hand-drawn beach"}
	im := &imagemock.Provider{Artifacts: []imagegen.Artifact{
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishSuccess, Binary: img},
	}}
	g := New(lm, im, "draw it", 500, 350, nil)

	out, err := g.Illustrate(context.Background(), "beach day")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	reqs := im.RequestsSnapshot()
	require.Len(t, reqs, 1)
	assert.Equal(t, imagegen.Request{Prompt: "a hand-drawn beach", Width: 512, Height: 384}, reqs[0])

	calls := lm.CallsSnapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, llm.PurposeIllustrationPrompt, calls[0].Req.Purpose)
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleUser, Content: "draw it"},
		{Role: llm.RoleUser, Content: "beach day"},
	}, calls[0].Req.Messages)
}

func TestIllustrate_SkipsFilteredAndNonImage(t *testing.T) {
	red := encodePNG(t, color.RGBA{R: 255, A: 255})
	blue := encodePNG(t, color.RGBA{B: 255, A: 255})

	im := &imagemock.Provider{Artifacts: []imagegen.Artifact{
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishFilter, Binary: red},
		{Type: imagegen.ArtifactText, FinishReason: imagegen.FinishSuccess, Binary: []byte("hello")},
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishSuccess, Binary: []byte("corrupt")},
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishSuccess, Binary: blue},
	}}
	g := New(&llmmock.Provider{Response: "p"}, im, "draw", 64, 64, nil)

	out, err := g.Illustrate(context.Background(), "body")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	r, gr, b, _ := decoded.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, gr, b})
}

func TestIllustrate_ReencodesAsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8)), nil))

	im := &imagemock.Provider{Artifacts: []imagegen.Artifact{
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishSuccess, Binary: buf.Bytes()},
	}}
	g := New(&llmmock.Provider{Response: "p"}, im, "draw", 64, 64, nil)

	out, err := g.Illustrate(context.Background(), "body")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), out[:4])
}

func TestIllustrate_NoUsableArtifact(t *testing.T) {
	im := &imagemock.Provider{Artifacts: []imagegen.Artifact{
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishFilter, Binary: []byte("x")},
	}}
	g := New(&llmmock.Provider{Response: "p"}, im, "draw", 64, 64, nil)

	out, err := g.Illustrate(context.Background(), "body")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestIllustrate_Failures(t *testing.T) {
	boom := errors.New("boom")

	g := New(&llmmock.Provider{Err: boom}, &imagemock.Provider{}, "draw", 64, 64, nil)
	_, err := g.Illustrate(context.Background(), "body")
	require.ErrorIs(t, err, common.ErrGeneration)

	im := &imagemock.Provider{Err: boom}
	g = New(&llmmock.Provider{Response: "p"}, im, "draw", 64, 64, nil)
	_, err = g.Illustrate(context.Background(), "body")
	require.ErrorIs(t, err, common.ErrGeneration)
	require.ErrorIs(t, err, boom)
}
