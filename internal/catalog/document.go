package catalog

import "slices"

// Document is a single catalog record describing a film's copyright filing.
type Document struct {
	ID              int      `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	FullDescription string   `yaml:"full_description"`
	Year            string   `yaml:"year"`
	DocumentType    string   `yaml:"document_type"`
	Studio          string   `yaml:"studio"`
	Genre           string   `yaml:"genre"`
	Director        string   `yaml:"director"`
	Actors          []string `yaml:"actors"`
	Runtime         string   `yaml:"runtime"`
	Language        string   `yaml:"language"`
}

// Flag is a reviewer-submitted concern attached to a document.
type Flag struct {
	ID     int    `yaml:"id"`
	User   string `yaml:"user"`
	Reason string `yaml:"reason"`
	Date   string `yaml:"date"`
}

// Managed is the reduced projection shown by the documents manager.
type Managed struct {
	ID           int
	Title        string
	Year         string
	DocumentType string
	Studio       string
}

// Manage projects the document for the manager view.
func (d Document) Manage() Managed {
	return Managed{
		ID:           d.ID,
		Title:        d.Title,
		Year:         d.Year,
		DocumentType: d.DocumentType,
		Studio:       d.Studio,
	}
}

func (d Document) clone() Document {
	d.Actors = slices.Clone(d.Actors)
	return d
}

func cloneDocuments(docs []Document) []Document {
	if len(docs) == 0 {
		return nil
	}
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = d.clone()
	}
	return out
}

func cloneFlags(flags map[int][]Flag) map[int][]Flag {
	out := make(map[int][]Flag, len(flags))
	for id, list := range flags {
		if len(list) == 0 {
			continue
		}
		out[id] = slices.Clone(list)
	}
	return out
}

// IDs returns the ids of docs in order.
func IDs(docs []Document) []int {
	ids := make([]int, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}
