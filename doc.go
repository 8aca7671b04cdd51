// Package synonomous generates alternate string forms ("synonyms") of
// identifier-like labels and uses them to make an ordered sequence
// addressable by name as well as by position.
//
// # Overview
//
// A label such as "background-color" has many conventional spellings:
// "backgroundColor", "BACKGROUND_COLOR", "Background Color". synonomous
// computes those spellings through a pluggable set of pure string
// transformers, then attaches them as lookup keys onto a List so that every
// spelling resolves to the same element the label came from.
//
// # Core Concepts
//
// The library is built around three small pieces:
//
//   - Transformer: a pure func(string) string registered under a name in a
//     Registry. Four built-ins ship with every registry: verbatim,
//     toCamelCase, toAllCaps, and toTitle.
//   - Path: an ordered sequence of segments locating a nested value inside
//     a mapping graph, parsed from or rendered to dot-delimited form.
//   - Decorator: computes the de-duplicated, order-preserving synonym list
//     for each element's label and attaches the synonyms as keys on a List,
//     either directly or under a nested target path.
//
// Key attachment is first-writer-wins: a synonym that collides with an
// existing key or positional slot is silently skipped, never overwritten.
// Digit-initial results of the identifier-oriented transformers are
// prefixed with the '$' sentinel so they stay accessor-safe and cannot
// shadow an index.
//
// # Usage Example
//
//	d := synonomous.NewDecorator("columns",
//	    synonomous.TransformVerbatim,
//	    synonomous.TransformAllCaps,
//	    synonomous.TransformCamelCase,
//	)
//	defer d.Close()
//
//	list := synonomous.NewList("borderLeft", "background-color")
//	if _, err := d.DecorateAll(context.Background(), list); err != nil {
//	    log.Fatal(err)
//	}
//
//	elem, _ := list.Lookup("BACKGROUND_COLOR") // == list.At(1)
//	elem, _ = list.Lookup("backgroundColor")   // == list.At(1)
//
// Record elements work the same way, with the label drawn from a property
// path (default "name"):
//
//	list := synonomous.NewList(
//	    map[string]any{"style": "borderLeft", "value": "8px"},
//	)
//	d.DecorateAll(ctx, list, synonomous.ParsePath("style"))
//
// # Custom Transformers
//
// Consumers may register additional transformers on the shared default
// registry, or on a private clone for one decorator:
//
//	synonomous.Register("toDotted", func(s string) string {
//	    return strings.ReplaceAll(synonomous.ToAllCaps(s), "_", ".")
//	})
//
//	private := synonomous.Default().Clone()
//	private.Register("folded", synonomous.Folded(synonomous.ToCamelCase))
//	d := synonomous.NewDecorator("cols", "folded").WithRegistry(private)
//
// # Concurrency
//
// Every operation is a bounded, synchronous computation with no I/O.
// Registries are safe for concurrent use; decoration mutates its target
// List in place, so callers sharing one list must serialize externally.
package synonomous
