// Package io writes dependency graphs to files.
//
// # Export Files
//
// An [Exporter] saves a graph in one of the [Formats] under a directory.
// Files are named after the 1-based position of the sentence in the
// treebank:
//
//	s1.dot   s1.tikz   s2.svg   s12.json
//
// [Exporter.SaveCurrent] saves the graph selected in a treebank model and
// fails with NO_GRAPH_SELECTED when the model is empty.
//
// # JSON Format
//
// [WriteJSON] produces a self-describing document for interchange with
// other tools:
//
//	{
//	  "layer": "surface",
//	  "tokens": [
//	    {"id": 1, "form": "Cats", "head": 2, "deprel": "nsubj"},
//	    {"id": 2, "form": "chase", "head": 0, "deprel": "ROOT"},
//	    {"id": 3, "form": "mice", "head": 2, "deprel": "dobj", "marked": true}
//	  ],
//	  "edges": [
//	    {"source": 2, "target": 1, "label": "nsubj"},
//	    {"source": 2, "target": 3, "label": "dobj"}
//	  ]
//	}
//
// Token ids and edge endpoints are 1-based, matching the CoNLL-X ID column.
// Head and relation fields are those of the layer the graph was built from.
package io
