// Package arffparser implements a parser for the Attribute-Relation File
// Format (ARFF).
//
// An ARFF file is a header section declaring a relation name and a list of
// typed attributes, followed by a data section of comma-separated or sparse
// {index value} rows. The parser turns such a file into a typed in-memory
// Relation and, from it, a feature matrix / label vector split around a
// class column.
//
// The parser is structured as a line-oriented pipeline with four layers:
//
//   - Fields: a quote-aware tokenizer for header lines (@relation,
//     @attribute, @data).
//   - ParseAttribute: the attribute grammar, building a typed Attribute from
//     tokenized @attribute fields.
//   - SplitDense / ExpandSparse and DecodeValue: row splitting and per-type
//     value decoding for data lines.
//   - Parse: the assembler driving the line scan, accumulating rows and
//     diagnostics.
//
// Usage:
//
//	rel, diags, err := arffparser.ParseFile("weather.arff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ds, err := rel.Dataset(0) // 0: resolve the class column heuristically
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rel.Name, len(ds.X), len(diags))
//
// Malformed declarations, bad rows and undecodable values degrade to
// warnings in the returned Diagnostics; only an unreadable input, an
// out-of-bounds explicit class index, or a scan that accepts zero rows is
// fatal. Relational (nested) attributes are rejected, not parsed.
package arffparser
