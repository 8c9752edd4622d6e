// Package uploads models the "add documents" form of the manager.
//
// The form has four slots. An archive submission uses only the Archive slot;
// an individual submission uses Document, Metadata and Transcript. Selecting a
// file records its path and base name. The file is never opened here;
// ingesting it is the Transport's job.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned when a file's extension is not accepted by
// the slot it was offered to.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrNothingSelected is returned by Submit when the active mode has no file.
var ErrNothingSelected = errors.New("no files selected")

// Slot names one file input.
type Slot int

const (
	Archive Slot = iota
	Document
	Metadata
	Transcript
)

// Slots lists every slot in form order.
var Slots = []Slot{Archive, Document, Metadata, Transcript}

func (s Slot) String() string {
	switch s {
	case Archive:
		return "archive"
	case Document:
		return "document"
	case Metadata:
		return "metadata"
	case Transcript:
		return "transcript"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Label is the heading shown next to the slot.
func (s Slot) Label() string {
	switch s {
	case Archive:
		return "ZIP archive"
	case Document:
		return "Primary document"
	case Metadata:
		return "Metadata"
	case Transcript:
		return "Transcript"
	default:
		return s.String()
	}
}

// Accepts returns the lower-case extensions the slot takes.
func (s Slot) Accepts() []string {
	switch s {
	case Archive:
		return []string{".zip"}
	case Document:
		return []string{".pdf"}
	case Metadata:
		return []string{".json", ".xml"}
	case Transcript:
		return []string{".txt"}
	default:
		return nil
	}
}

// Mode selects which slots a submission carries.
type Mode int

const (
	ModeArchive Mode = iota
	ModeIndividual
)

func (m Mode) String() string {
	if m == ModeIndividual {
		return "individual"
	}
	return "archive"
}

// Slots returns the slots used by the mode.
func (m Mode) Slots() []Slot {
	if m == ModeIndividual {
		return []Slot{Document, Metadata, Transcript}
	}
	return []Slot{Archive}
}

// FileRef is an opaque reference to a chosen file.
type FileRef struct {
	Path string
	Name string
}

// Submission is what the form hands to a Transport.
type Submission struct {
	ID          string
	Mode        Mode
	Files       map[Slot]FileRef
	SubmittedAt time.Time
}

// Transport ingests a submission.
type Transport interface {
	Upload(ctx context.Context, sub Submission) error
}

// Form holds the current slot contents. The zero value is an empty form in
// archive mode.
type Form struct {
	mode  Mode
	files map[Slot]FileRef

	// Now is used to stamp submissions; nil means time.Now.
	Now func() time.Time
}

// Mode returns the active mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// SetMode switches modes. Slot contents are kept.
func (f *Form) SetMode(mode Mode) {
	f.mode = mode
}

// Select stores path in slot after checking its extension.
func (f *Form) Select(slot Slot, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%s: empty path: %w", slot, ErrUnsupportedType)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(slot.Accepts(), ext) {
		return fmt.Errorf("%s does not accept %q: %w", slot, filepath.Base(path), ErrUnsupportedType)
	}
	if f.files == nil {
		f.files = make(map[Slot]FileRef)
	}
	f.files[slot] = FileRef{Path: path, Name: filepath.Base(path)}
	return nil
}

// Selected returns the file in slot, if any.
func (f *Form) Selected(slot Slot) (FileRef, bool) {
	ref, ok := f.files[slot]
	return ref, ok
}

// Clear empties one slot.
func (f *Form) Clear(slot Slot) {
	delete(f.files, slot)
}

// Reset empties every slot.
func (f *Form) Reset() {
	f.files = nil
}

// Ready reports whether the active mode has at least one file.
func (f *Form) Ready() bool {
	for _, slot := range f.mode.Slots() {
		if _, ok := f.files[slot]; ok {
			return true
		}
	}
	return false
}

// Submit hands the active mode's files to t. All four slots are reset
// afterwards, whether or not the transport succeeded and even when nothing
// was selected.
func (f *Form) Submit(ctx context.Context, t Transport) (Submission, error) {
	defer f.Reset()
	if !f.Ready() {
		return Submission{}, ErrNothingSelected
	}

	sub := Submission{
		ID:          uuid.New().String(),
		Mode:        f.mode,
		Files:       make(map[Slot]FileRef),
		SubmittedAt: f.now(),
	}
	for _, slot := range f.mode.Slots() {
		if ref, ok := f.files[slot]; ok {
			sub.Files[slot] = ref
		}
	}
	if err := t.Upload(ctx, sub); err != nil {
		return sub, fmt.Errorf("upload %s: %w", sub.ID, err)
	}
	return sub, nil
}

func (f *Form) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}
