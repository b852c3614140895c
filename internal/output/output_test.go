package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joescharf/folio/internal/models"
)

func newTestUI() (*UI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &UI{Out: out, ErrOut: errOut}, out, errOut
}

func TestInfo(t *testing.T) {
	u, out, _ := newTestUI()
	u.Info("hello %s", "world")
	assert.Contains(t, out.String(), "hello world")
}

func TestSuccess(t *testing.T) {
	u, out, _ := newTestUI()
	u.Success("done %d", 42)
	assert.Contains(t, out.String(), "done 42")
}

func TestWarning(t *testing.T) {
	u, _, errOut := newTestUI()
	u.Warning("careful %s", "now")
	assert.Contains(t, errOut.String(), "careful now")
}

func TestError(t *testing.T) {
	u, _, errOut := newTestUI()
	u.Error("failed %s", "badly")
	assert.Contains(t, errOut.String(), "failed badly")
}

func TestVerboseLog_Enabled(t *testing.T) {
	u, out, _ := newTestUI()
	u.Verbose = true
	u.VerboseLog("detail %d", 1)
	assert.Contains(t, out.String(), "detail 1")
}

func TestVerboseLog_Disabled(t *testing.T) {
	u, out, _ := newTestUI()
	u.Verbose = false
	u.VerboseLog("detail %d", 1)
	assert.Empty(t, out.String())
}

func TestDryRunMsg(t *testing.T) {
	u, _, errOut := newTestUI()
	u.DryRun = true
	u.DryRunMsg("would delete %s", "project")
	assert.Contains(t, errOut.String(), "[DRY-RUN]")
	assert.Contains(t, errOut.String(), "would delete project")

	u.DryRun = false
	errOut.Reset()
	u.DryRunMsg("would delete %s", "project")
	assert.Empty(t, errOut.String())
}

func TestKindColor(t *testing.T) {
	assert.NotEmpty(t, KindColor(models.KindSegment))
	assert.NotEmpty(t, KindColor(models.KindLanguage))
	assert.NotEmpty(t, KindColor(models.KindPlatform))
	assert.Equal(t, "other", KindColor(models.CategoryKind("other")))
}

func TestTagList(t *testing.T) {
	assert.Equal(t, "-", TagList(nil))
	got := TagList([]models.Category{{Name: "Go"}, {Name: "Rust"}})
	assert.Equal(t, "Go, Rust", got)
}

func TestCoverLabel(t *testing.T) {
	p := &models.Project{Images: []models.Image{{URL: "cover.png", IsCover: true}}}
	assert.Equal(t, "cover.png", CoverLabel(p))

	bare := &models.Project{}
	assert.Contains(t, CoverLabel(bare), "no cover")
}
