package uploads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/logger"
)

type recordingTransport struct {
	got []Submission
	err error
}

func (r *recordingTransport) Upload(_ context.Context, sub Submission) error {
	r.got = append(r.got, sub)
	return r.err
}

func TestForm_SelectChecksExtension(t *testing.T) {
	var f Form

	tests := []struct {
		slot Slot
		path string
		ok   bool
	}{
		{Archive, "/tmp/bundle.zip", true},
		{Archive, "/tmp/bundle.ZIP", true},
		{Archive, "/tmp/bundle.tar", false},
		{Document, "scan.pdf", true},
		{Document, "scan.png", false},
		{Metadata, "meta.json", true},
		{Metadata, "meta.xml", true},
		{Metadata, "meta.yaml", false},
		{Transcript, "notes.txt", true},
		{Transcript, "notes", false},
		{Transcript, "  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.slot.String()+"/"+tt.path, func(t *testing.T) {
			err := f.Select(tt.slot, tt.path)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrUnsupportedType)
		})
	}
}

func TestForm_RejectedSelectionKeepsSlot(t *testing.T) {
	var f Form
	require.NoError(t, f.Select(Document, "/docs/first.pdf"))

	require.Error(t, f.Select(Document, "/docs/second.doc"))
	ref, ok := f.Selected(Document)
	require.True(t, ok)
	assert.Equal(t, FileRef{Path: "/docs/first.pdf", Name: "first.pdf"}, ref)
}

func TestForm_SubmitIndividual(t *testing.T) {
	stamp := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	f := Form{Now: func() time.Time { return stamp }}
	f.SetMode(ModeIndividual)
	require.NoError(t, f.Select(Archive, "ignored.zip"))
	require.NoError(t, f.Select(Document, "/in/filing.pdf"))
	require.NoError(t, f.Select(Metadata, "/in/filing.json"))
	require.True(t, f.Ready())

	tr := &recordingTransport{}
	sub, err := f.Submit(context.Background(), tr)
	require.NoError(t, err)

	require.Len(t, tr.got, 1)
	assert.Equal(t, sub.ID, tr.got[0].ID)
	_, err = uuid.Parse(sub.ID)
	assert.NoError(t, err)
	assert.Equal(t, ModeIndividual, sub.Mode)
	assert.Equal(t, stamp, sub.SubmittedAt)
	assert.Len(t, sub.Files, 2)
	assert.Equal(t, "filing.pdf", sub.Files[Document].Name)
	_, hasArchive := sub.Files[Archive]
	assert.False(t, hasArchive)

	for _, slot := range Slots {
		_, ok := f.Selected(slot)
		assert.False(t, ok, slot.String())
	}
}

func TestForm_SubmitResetsOnTransportError(t *testing.T) {
	var f Form
	require.NoError(t, f.Select(Archive, "bundle.zip"))
	require.NoError(t, f.Select(Transcript, "notes.txt"))

	boom := errors.New("ingest offline")
	_, err := f.Submit(context.Background(), &recordingTransport{err: boom})
	assert.ErrorIs(t, err, boom)

	for _, slot := range Slots {
		_, ok := f.Selected(slot)
		assert.False(t, ok, slot.String())
	}
}

func TestForm_SubmitNothingSelected(t *testing.T) {
	var f Form
	require.NoError(t, f.Select(Document, "filing.pdf"))

	tr := &recordingTransport{}
	_, err := f.Submit(context.Background(), tr)
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Empty(t, tr.got)

	_, ok := f.Selected(Document)
	assert.False(t, ok)
}

func TestForm_ClearAndModeKeepsFiles(t *testing.T) {
	var f Form
	require.NoError(t, f.Select(Archive, "bundle.zip"))

	f.SetMode(ModeIndividual)
	assert.False(t, f.Ready())
	f.SetMode(ModeArchive)
	assert.True(t, f.Ready())

	f.Clear(Archive)
	assert.False(t, f.Ready())
}

func TestLogTransport(t *testing.T) {
	tr := LogTransport{Log: logger.Nop()}
	sub := Submission{ID: "x", Files: map[Slot]FileRef{Archive: {Path: "a.zip", Name: "a.zip"}}}

	assert.NoError(t, tr.Upload(context.Background(), sub))
	assert.NoError(t, LogTransport{}.Upload(context.Background(), sub))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.Upload(ctx, sub), context.Canceled)
}

func TestSlotMetadata(t *testing.T) {
	assert.Equal(t, "Primary document", Document.Label())
	assert.Equal(t, []string{".json", ".xml"}, Metadata.Accepts())
	assert.Equal(t, []Slot{Archive}, ModeArchive.Slots())
	assert.Equal(t, "individual", ModeIndividual.String())
}
