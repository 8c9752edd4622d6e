// Package catalog holds the document records browsed by marquee.
//
// # Overview
//
// A Store owns the active documents of one session. Documents are seeded once
// (from DefaultSeed or a YAML file loaded with LoadFile) and are never edited
// afterwards; the only mutation is Remove, issued by the documents manager.
//
// # Queries
//
// Filter performs the listing search: a case-insensitive substring match over
// title, year and studio, combined with logical OR. A blank query returns the
// whole list. Search extends this with genre and an inclusive year range:
//
//	store.Filter("1927")                               // Jazz Singer, Metropolis
//	store.Search(catalog.Query{Genre: "drama"})        // every drama
//	store.Search(catalog.Query{YearFrom: 1930, YearTo: 1935})
//
// Results always keep seed order.
//
// # Copies
//
// Every accessor returns copies. Callers may modify the returned documents
// (including the Actors slice) without affecting the store.
//
// # Catalog files
//
// LoadFile accepts a YAML document with a documents list and an optional
// flags map keyed by document id. Ids must be unique and positive, titles
// non-empty and years four digits. Validation failures wrap ErrInvalidCatalog.
package catalog
